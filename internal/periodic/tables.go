package periodic

var builtinElements = []Element{
	{Symbol: "H", Name: "Hydrogen", AtomicNumber: 1, AtomicWeight: "1.008", Category: CategoryNonmetal},
	{Symbol: "He", Name: "Helium", AtomicNumber: 2, AtomicWeight: "4.0026", Category: CategoryNoble},
	{Symbol: "Li", Name: "Lithium", AtomicNumber: 3, AtomicWeight: "6.94", Category: CategoryAlkali},
	{Symbol: "Be", Name: "Beryllium", AtomicNumber: 4, AtomicWeight: "9.0122", Category: CategoryAlkaline},
	{Symbol: "B", Name: "Boron", AtomicNumber: 5, AtomicWeight: "10.81", Category: CategoryMetalloid},
	{Symbol: "C", Name: "Carbon", AtomicNumber: 6, AtomicWeight: "12.011", Category: CategoryNonmetal},
	{Symbol: "N", Name: "Nitrogen", AtomicNumber: 7, AtomicWeight: "14.007", Category: CategoryNonmetal},
	{Symbol: "O", Name: "Oxygen", AtomicNumber: 8, AtomicWeight: "15.999", Category: CategoryNonmetal},
	{Symbol: "F", Name: "Fluorine", AtomicNumber: 9, AtomicWeight: "18.998", Category: CategoryNonmetal},
	{Symbol: "Ne", Name: "Neon", AtomicNumber: 10, AtomicWeight: "20.180", Category: CategoryNoble},
	{Symbol: "Na", Name: "Sodium", AtomicNumber: 11, AtomicWeight: "22.990", Category: CategoryAlkali},
	{Symbol: "Mg", Name: "Magnesium", AtomicNumber: 12, AtomicWeight: "24.305", Category: CategoryAlkaline},
	{Symbol: "Al", Name: "Aluminum", AtomicNumber: 13, AtomicWeight: "26.982", Category: CategoryPost},
	{Symbol: "Si", Name: "Silicon", AtomicNumber: 14, AtomicWeight: "28.085", Category: CategoryMetalloid},
	{Symbol: "P", Name: "Phosphorus", AtomicNumber: 15, AtomicWeight: "30.974", Category: CategoryNonmetal},
	{Symbol: "S", Name: "Sulfur", AtomicNumber: 16, AtomicWeight: "32.06", Category: CategoryNonmetal},
	{Symbol: "Cl", Name: "Chlorine", AtomicNumber: 17, AtomicWeight: "35.45", Category: CategoryNonmetal},
	{Symbol: "Ar", Name: "Argon", AtomicNumber: 18, AtomicWeight: "39.948", Category: CategoryNoble},
	{Symbol: "K", Name: "Potassium", AtomicNumber: 19, AtomicWeight: "39.098", Category: CategoryAlkali},
	{Symbol: "Ca", Name: "Calcium", AtomicNumber: 20, AtomicWeight: "40.078", Category: CategoryAlkaline},
	{Symbol: "Sc", Name: "Scandium", AtomicNumber: 21, AtomicWeight: "44.956", Category: CategoryTransition},
	{Symbol: "Ti", Name: "Titanium", AtomicNumber: 22, AtomicWeight: "47.867", Category: CategoryTransition},
	{Symbol: "V", Name: "Vanadium", AtomicNumber: 23, AtomicWeight: "50.942", Category: CategoryTransition},
	{Symbol: "Cr", Name: "Chromium", AtomicNumber: 24, AtomicWeight: "51.996", Category: CategoryTransition},
	{Symbol: "Mn", Name: "Manganese", AtomicNumber: 25, AtomicWeight: "54.938", Category: CategoryTransition},
	{Symbol: "Fe", Name: "Iron", AtomicNumber: 26, AtomicWeight: "55.845", Category: CategoryTransition},
	{Symbol: "Co", Name: "Cobalt", AtomicNumber: 27, AtomicWeight: "58.933", Category: CategoryTransition},
	{Symbol: "Ni", Name: "Nickel", AtomicNumber: 28, AtomicWeight: "58.693", Category: CategoryTransition},
	{Symbol: "Cu", Name: "Copper", AtomicNumber: 29, AtomicWeight: "63.546", Category: CategoryTransition},
	{Symbol: "Zn", Name: "Zinc", AtomicNumber: 30, AtomicWeight: "65.38", Category: CategoryTransition},
	{Symbol: "Ga", Name: "Gallium", AtomicNumber: 31, AtomicWeight: "69.723", Category: CategoryPost},
	{Symbol: "Ge", Name: "Germanium", AtomicNumber: 32, AtomicWeight: "72.630", Category: CategoryMetalloid},
	{Symbol: "As", Name: "Arsenic", AtomicNumber: 33, AtomicWeight: "74.922", Category: CategoryMetalloid},
	{Symbol: "Se", Name: "Selenium", AtomicNumber: 34, AtomicWeight: "78.971", Category: CategoryNonmetal},
	{Symbol: "Br", Name: "Bromine", AtomicNumber: 35, AtomicWeight: "79.904", Category: CategoryNonmetal},
	{Symbol: "Kr", Name: "Krypton", AtomicNumber: 36, AtomicWeight: "83.798", Category: CategoryNoble},
	{Symbol: "Rb", Name: "Rubidium", AtomicNumber: 37, AtomicWeight: "85.468", Category: CategoryAlkali},
	{Symbol: "Sr", Name: "Strontium", AtomicNumber: 38, AtomicWeight: "87.62", Category: CategoryAlkaline},
	{Symbol: "Y", Name: "Yttrium", AtomicNumber: 39, AtomicWeight: "88.906", Category: CategoryTransition},
	{Symbol: "Zr", Name: "Zirconium", AtomicNumber: 40, AtomicWeight: "91.224", Category: CategoryTransition},
	{Symbol: "Nb", Name: "Niobium", AtomicNumber: 41, AtomicWeight: "92.906", Category: CategoryTransition},
	{Symbol: "Mo", Name: "Molybdenum", AtomicNumber: 42, AtomicWeight: "95.95", Category: CategoryTransition},
	{Symbol: "Tc", Name: "Technetium", AtomicNumber: 43, AtomicWeight: "[98]", Category: CategoryTransition},
	{Symbol: "Ru", Name: "Ruthenium", AtomicNumber: 44, AtomicWeight: "101.07", Category: CategoryTransition},
	{Symbol: "Rh", Name: "Rhodium", AtomicNumber: 45, AtomicWeight: "102.91", Category: CategoryTransition},
	{Symbol: "Pd", Name: "Palladium", AtomicNumber: 46, AtomicWeight: "106.42", Category: CategoryTransition},
	{Symbol: "Ag", Name: "Silver", AtomicNumber: 47, AtomicWeight: "107.87", Category: CategoryTransition},
	{Symbol: "Cd", Name: "Cadmium", AtomicNumber: 48, AtomicWeight: "112.41", Category: CategoryTransition},
	{Symbol: "In", Name: "Indium", AtomicNumber: 49, AtomicWeight: "114.82", Category: CategoryPost},
	{Symbol: "Sn", Name: "Tin", AtomicNumber: 50, AtomicWeight: "118.71", Category: CategoryPost},
	{Symbol: "Sb", Name: "Antimony", AtomicNumber: 51, AtomicWeight: "121.76", Category: CategoryMetalloid},
	{Symbol: "Te", Name: "Tellurium", AtomicNumber: 52, AtomicWeight: "127.60", Category: CategoryMetalloid},
	{Symbol: "I", Name: "Iodine", AtomicNumber: 53, AtomicWeight: "126.90", Category: CategoryNonmetal},
	{Symbol: "Xe", Name: "Xenon", AtomicNumber: 54, AtomicWeight: "131.29", Category: CategoryNoble},
	{Symbol: "Cs", Name: "Cesium", AtomicNumber: 55, AtomicWeight: "132.91", Category: CategoryAlkali},
	{Symbol: "Ba", Name: "Barium", AtomicNumber: 56, AtomicWeight: "137.33", Category: CategoryAlkaline},
	{Symbol: "La", Name: "Lanthanum", AtomicNumber: 57, AtomicWeight: "138.91", Category: CategoryLanthanide},
	{Symbol: "Ce", Name: "Cerium", AtomicNumber: 58, AtomicWeight: "140.12", Category: CategoryLanthanide},
	{Symbol: "Pr", Name: "Praseodymium", AtomicNumber: 59, AtomicWeight: "140.91", Category: CategoryLanthanide},
	{Symbol: "Nd", Name: "Neodymium", AtomicNumber: 60, AtomicWeight: "144.24", Category: CategoryLanthanide},
	{Symbol: "W", Name: "Tungsten", AtomicNumber: 74, AtomicWeight: "183.84", Category: CategoryTransition},
	{Symbol: "U", Name: "Uranium", AtomicNumber: 92, AtomicWeight: "238.03", Category: CategoryActinide},
}

var builtinEmoji = []EmojiMapping{
	{Word: "love", Emoji: "❤️"},
	{Word: "heart", Emoji: "💖"},
	{Word: "fire", Emoji: "🔥"},
	{Word: "broken", Emoji: "💔"},
	{Word: "cry", Emoji: "😢"},
	{Word: "tears", Emoji: "😢"},
	{Word: "star", Emoji: "⭐"},
	{Word: "right", Emoji: "✅"},
	{Word: "sad", Emoji: "😢"},
	{Word: "happy", Emoji: "😊"},
	{Word: "go", Emoji: "🏃"},
	{Word: "stop", Emoji: "🛑"},
	{Word: "play", Emoji: "▶️"},
	{Word: "rewind", Emoji: "⏪"},
	{Word: "smile", Emoji: "😄"},
	{Word: "time", Emoji: "⏳"},
	{Word: "peace", Emoji: "✌️"},
	{Word: "win", Emoji: "🏆"},
	{Word: "wave", Emoji: "👋"},
	{Word: "100", Emoji: "💯"},
}

// The lowercase "e" entry is shadowed by "E" because lookups uppercase their input.
var builtinSymbols = []SymbolMapping{
	{Char: "A", Symbol: "∀", Name: "Universal Quant"},
	{Char: "B", Symbol: "𝔅", Name: "Magnetic Field"},
	{Char: "C", Symbol: "℃", Name: "Celsius"},
	{Char: "D", Symbol: "∆", Name: "Delta"},
	{Char: "E", Symbol: "ℯ", Name: "Euler's Num"},
	{Char: "F", Symbol: "∮", Name: "Line Integral"},
	{Char: "G", Symbol: "𝒢", Name: "Gravity"},
	{Char: "H", Symbol: "ℏ", Name: "hbar"},
	{Char: "I", Symbol: "𝕀", Name: "Identity Matrix"},
	{Char: "J", Symbol: "𝒥", Name: "Joule"},
	{Char: "K", Symbol: "𝒦", Name: "Kelvin"},
	{Char: "L", Symbol: "𝓛", Name: "Lagrangian"},
	{Char: "M", Symbol: "𝓜", Name: "Mass"},
	{Char: "N", Symbol: "𝒩", Name: "Normal Dist"},
	{Char: "O", Symbol: "Ω", Name: "Ohm"},
	{Char: "P", Symbol: "∏", Name: "Product"},
	{Char: "Q", Symbol: "ℚ", Name: "Rational Nums"},
	{Char: "R", Symbol: "ℝ", Name: "Real Nums"},
	{Char: "S", Symbol: "∑", Name: "Summation"},
	{Char: "T", Symbol: "⊤", Name: "Truth/Tesla"},
	{Char: "U", Symbol: "µ", Name: "Micro"},
	{Char: "V", Symbol: "√", Name: "Square Root"},
	{Char: "W", Symbol: "𝒲", Name: "Watt/Work"},
	{Char: "X", Symbol: "×", Name: "Multiply/Unknown"},
	{Char: "Y", Symbol: "γ", Name: "Gamma Ray"},
	{Char: "Z", Symbol: "ℤ", Name: "Integers/Atomic"},
	{Char: "+", Symbol: "+", Name: "Plus"},
	{Char: "-", Symbol: "-", Name: "Minus"},
	{Char: "*", Symbol: "*", Name: "Multiply"},
	{Char: "/", Symbol: "/", Name: "Divide"},
	{Char: "=", Symbol: "=", Name: "Equals"},
	{Char: ">", Symbol: ">", Name: "Greater Than"},
	{Char: "<", Symbol: "<", Name: "Less Than"},
	{Char: "(", Symbol: "(", Name: "Left Paren"},
	{Char: ")", Symbol: ")", Name: "Right Paren"},
	{Char: "[", Symbol: "[", Name: "Left Bracket"},
	{Char: "]", Symbol: "]", Name: "Right Bracket"},
	{Char: "{", Symbol: "{", Name: "Left Brace"},
	{Char: "}", Symbol: "}", Name: "Right Brace"},
	{Char: "e", Symbol: "e", Name: "Exponential"},
}
