package refdata

// Country is the static metadata record for one ISO 3166-1 alpha-2 code.
type Country struct {
	Name           string
	OfficialName   string
	ISOCode3       string
	Capital        string
	ContinentCode  string
	ContinentName  string
	CallingCode    string
	TLD            string
	CurrencyCode   string
	CurrencyName   string
	CurrencySymbol string
	Languages      string
	FlagEmoji      string
	IsEU           bool
}

// countries maps ISO alpha-2 codes to metadata. Built once at init,
// read-only afterwards.
var countries = map[string]Country{
	"US": {Name: "United States", OfficialName: "United States of America", ISOCode3: "USA", Capital: "Washington, D.C.", ContinentCode: "NA", ContinentName: "North America", CallingCode: "+1", TLD: ".us", CurrencyCode: "USD", CurrencyName: "US Dollar", CurrencySymbol: "$", Languages: "en-US,es-US", FlagEmoji: "🇺🇸", IsEU: false},
	"CA": {Name: "Canada", OfficialName: "Canada", ISOCode3: "CAN", Capital: "Ottawa", ContinentCode: "NA", ContinentName: "North America", CallingCode: "+1", TLD: ".ca", CurrencyCode: "CAD", CurrencyName: "Canadian Dollar", CurrencySymbol: "$", Languages: "en-CA,fr-CA", FlagEmoji: "🇨🇦", IsEU: false},
	"MX": {Name: "Mexico", OfficialName: "United Mexican States", ISOCode3: "MEX", Capital: "Mexico City", ContinentCode: "NA", ContinentName: "North America", CallingCode: "+52", TLD: ".mx", CurrencyCode: "MXN", CurrencyName: "Mexican Peso", CurrencySymbol: "$", Languages: "es-MX", FlagEmoji: "🇲🇽", IsEU: false},
	"GB": {Name: "United Kingdom", OfficialName: "United Kingdom of Great Britain and Northern Ireland", ISOCode3: "GBR", Capital: "London", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+44", TLD: ".uk", CurrencyCode: "GBP", CurrencyName: "British Pound", CurrencySymbol: "£", Languages: "en-GB", FlagEmoji: "🇬🇧", IsEU: false},
	"DE": {Name: "Germany", OfficialName: "Federal Republic of Germany", ISOCode3: "DEU", Capital: "Berlin", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+49", TLD: ".de", CurrencyCode: "EUR", CurrencyName: "Euro", CurrencySymbol: "€", Languages: "de-DE", FlagEmoji: "🇩🇪", IsEU: true},
	"FR": {Name: "France", OfficialName: "French Republic", ISOCode3: "FRA", Capital: "Paris", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+33", TLD: ".fr", CurrencyCode: "EUR", CurrencyName: "Euro", CurrencySymbol: "€", Languages: "fr-FR", FlagEmoji: "🇫🇷", IsEU: true},
	"IT": {Name: "Italy", OfficialName: "Italian Republic", ISOCode3: "ITA", Capital: "Rome", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+39", TLD: ".it", CurrencyCode: "EUR", CurrencyName: "Euro", CurrencySymbol: "€", Languages: "it-IT", FlagEmoji: "🇮🇹", IsEU: true},
	"ES": {Name: "Spain", OfficialName: "Kingdom of Spain", ISOCode3: "ESP", Capital: "Madrid", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+34", TLD: ".es", CurrencyCode: "EUR", CurrencyName: "Euro", CurrencySymbol: "€", Languages: "es-ES", FlagEmoji: "🇪🇸", IsEU: true},
	"PT": {Name: "Portugal", OfficialName: "Portuguese Republic", ISOCode3: "PRT", Capital: "Lisbon", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+351", TLD: ".pt", CurrencyCode: "EUR", CurrencyName: "Euro", CurrencySymbol: "€", Languages: "pt-PT", FlagEmoji: "🇵🇹", IsEU: true},
	"NL": {Name: "Netherlands", OfficialName: "Kingdom of the Netherlands", ISOCode3: "NLD", Capital: "Amsterdam", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+31", TLD: ".nl", CurrencyCode: "EUR", CurrencyName: "Euro", CurrencySymbol: "€", Languages: "nl-NL", FlagEmoji: "🇳🇱", IsEU: true},
	"BE": {Name: "Belgium", OfficialName: "Kingdom of Belgium", ISOCode3: "BEL", Capital: "Brussels", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+32", TLD: ".be", CurrencyCode: "EUR", CurrencyName: "Euro", CurrencySymbol: "€", Languages: "nl-BE,fr-BE,de-BE", FlagEmoji: "🇧🇪", IsEU: true},
	"AT": {Name: "Austria", OfficialName: "Republic of Austria", ISOCode3: "AUT", Capital: "Vienna", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+43", TLD: ".at", CurrencyCode: "EUR", CurrencyName: "Euro", CurrencySymbol: "€", Languages: "de-AT", FlagEmoji: "🇦🇹", IsEU: true},
	"CH": {Name: "Switzerland", OfficialName: "Swiss Confederation", ISOCode3: "CHE", Capital: "Bern", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+41", TLD: ".ch", CurrencyCode: "CHF", CurrencyName: "Swiss Franc", CurrencySymbol: "CHF", Languages: "de-CH,fr-CH,it-CH,rm-CH", FlagEmoji: "🇨🇭", IsEU: false},
	"SE": {Name: "Sweden", OfficialName: "Kingdom of Sweden", ISOCode3: "SWE", Capital: "Stockholm", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+46", TLD: ".se", CurrencyCode: "SEK", CurrencyName: "Swedish Krona", CurrencySymbol: "kr", Languages: "sv-SE", FlagEmoji: "🇸🇪", IsEU: true},
	"NO": {Name: "Norway", OfficialName: "Kingdom of Norway", ISOCode3: "NOR", Capital: "Oslo", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+47", TLD: ".no", CurrencyCode: "NOK", CurrencyName: "Norwegian Krone", CurrencySymbol: "kr", Languages: "nb-NO,nn-NO", FlagEmoji: "🇳🇴", IsEU: false},
	"DK": {Name: "Denmark", OfficialName: "Kingdom of Denmark", ISOCode3: "DNK", Capital: "Copenhagen", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+45", TLD: ".dk", CurrencyCode: "DKK", CurrencyName: "Danish Krone", CurrencySymbol: "kr", Languages: "da-DK", FlagEmoji: "🇩🇰", IsEU: true},
	"FI": {Name: "Finland", OfficialName: "Republic of Finland", ISOCode3: "FIN", Capital: "Helsinki", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+358", TLD: ".fi", CurrencyCode: "EUR", CurrencyName: "Euro", CurrencySymbol: "€", Languages: "fi-FI,sv-FI", FlagEmoji: "🇫🇮", IsEU: true},
	"PL": {Name: "Poland", OfficialName: "Republic of Poland", ISOCode3: "POL", Capital: "Warsaw", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+48", TLD: ".pl", CurrencyCode: "PLN", CurrencyName: "Polish Zloty", CurrencySymbol: "zł", Languages: "pl-PL", FlagEmoji: "🇵🇱", IsEU: true},
	"CZ": {Name: "Czechia", OfficialName: "Czech Republic", ISOCode3: "CZE", Capital: "Prague", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+420", TLD: ".cz", CurrencyCode: "CZK", CurrencyName: "Czech Koruna", CurrencySymbol: "Kč", Languages: "cs-CZ", FlagEmoji: "🇨🇿", IsEU: true},
	"GR": {Name: "Greece", OfficialName: "Hellenic Republic", ISOCode3: "GRC", Capital: "Athens", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+30", TLD: ".gr", CurrencyCode: "EUR", CurrencyName: "Euro", CurrencySymbol: "€", Languages: "el-GR", FlagEmoji: "🇬🇷", IsEU: true},
	"IE": {Name: "Ireland", OfficialName: "Republic of Ireland", ISOCode3: "IRL", Capital: "Dublin", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+353", TLD: ".ie", CurrencyCode: "EUR", CurrencyName: "Euro", CurrencySymbol: "€", Languages: "en-IE,ga-IE", FlagEmoji: "🇮🇪", IsEU: true},
	"RU": {Name: "Russia", OfficialName: "Russian Federation", ISOCode3: "RUS", Capital: "Moscow", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+7", TLD: ".ru", CurrencyCode: "RUB", CurrencyName: "Russian Ruble", CurrencySymbol: "₽", Languages: "ru-RU", FlagEmoji: "🇷🇺", IsEU: false},
	"UA": {Name: "Ukraine", OfficialName: "Ukraine", ISOCode3: "UKR", Capital: "Kyiv", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+380", TLD: ".ua", CurrencyCode: "UAH", CurrencyName: "Ukrainian Hryvnia", CurrencySymbol: "₴", Languages: "uk-UA", FlagEmoji: "🇺🇦", IsEU: false},
	"RO": {Name: "Romania", OfficialName: "Romania", ISOCode3: "ROU", Capital: "Bucharest", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+40", TLD: ".ro", CurrencyCode: "RON", CurrencyName: "Romanian Leu", CurrencySymbol: "lei", Languages: "ro-RO", FlagEmoji: "🇷🇴", IsEU: true},
	"HU": {Name: "Hungary", OfficialName: "Hungary", ISOCode3: "HUN", Capital: "Budapest", ContinentCode: "EU", ContinentName: "Europe", CallingCode: "+36", TLD: ".hu", CurrencyCode: "HUF", CurrencyName: "Hungarian Forint", CurrencySymbol: "Ft", Languages: "hu-HU", FlagEmoji: "🇭🇺", IsEU: true},
	"JP": {Name: "Japan", OfficialName: "Japan", ISOCode3: "JPN", Capital: "Tokyo", ContinentCode: "AS", ContinentName: "Asia", CallingCode: "+81", TLD: ".jp", CurrencyCode: "JPY", CurrencyName: "Japanese Yen", CurrencySymbol: "¥", Languages: "ja-JP", FlagEmoji: "🇯🇵", IsEU: false},
	"CN": {Name: "China", OfficialName: "People's Republic of China", ISOCode3: "CHN", Capital: "Beijing", ContinentCode: "AS", ContinentName: "Asia", CallingCode: "+86", TLD: ".cn", CurrencyCode: "CNY", CurrencyName: "Chinese Yuan", CurrencySymbol: "¥", Languages: "zh-CN", FlagEmoji: "🇨🇳", IsEU: false},
	"KR": {Name: "South Korea", OfficialName: "Republic of Korea", ISOCode3: "KOR", Capital: "Seoul", ContinentCode: "AS", ContinentName: "Asia", CallingCode: "+82", TLD: ".kr", CurrencyCode: "KRW", CurrencyName: "South Korean Won", CurrencySymbol: "₩", Languages: "ko-KR", FlagEmoji: "🇰🇷", IsEU: false},
	"IN": {Name: "India", OfficialName: "Republic of India", ISOCode3: "IND", Capital: "New Delhi", ContinentCode: "AS", ContinentName: "Asia", CallingCode: "+91", TLD: ".in", CurrencyCode: "INR", CurrencyName: "Indian Rupee", CurrencySymbol: "₹", Languages: "hi-IN,en-IN", FlagEmoji: "🇮🇳", IsEU: false},
	"SG": {Name: "Singapore", OfficialName: "Republic of Singapore", ISOCode3: "SGP", Capital: "Singapore", ContinentCode: "AS", ContinentName: "Asia", CallingCode: "+65", TLD: ".sg", CurrencyCode: "SGD", CurrencyName: "Singapore Dollar", CurrencySymbol: "$", Languages: "en-SG,zh-SG,ms-SG,ta-SG", FlagEmoji: "🇸🇬", IsEU: false},
	"HK": {Name: "Hong Kong", OfficialName: "Hong Kong Special Administrative Region", ISOCode3: "HKG", Capital: "Hong Kong", ContinentCode: "AS", ContinentName: "Asia", CallingCode: "+852", TLD: ".hk", CurrencyCode: "HKD", CurrencyName: "Hong Kong Dollar", CurrencySymbol: "$", Languages: "zh-HK,en-HK", FlagEmoji: "🇭🇰", IsEU: false},
	"TW": {Name: "Taiwan", OfficialName: "Republic of China (Taiwan)", ISOCode3: "TWN", Capital: "Taipei", ContinentCode: "AS", ContinentName: "Asia", CallingCode: "+886", TLD: ".tw", CurrencyCode: "TWD", CurrencyName: "New Taiwan Dollar", CurrencySymbol: "NT$", Languages: "zh-TW", FlagEmoji: "🇹🇼", IsEU: false},
	"TH": {Name: "Thailand", OfficialName: "Kingdom of Thailand", ISOCode3: "THA", Capital: "Bangkok", ContinentCode: "AS", ContinentName: "Asia", CallingCode: "+66", TLD: ".th", CurrencyCode: "THB", CurrencyName: "Thai Baht", CurrencySymbol: "฿", Languages: "th-TH", FlagEmoji: "🇹🇭", IsEU: false},
	"VN": {Name: "Vietnam", OfficialName: "Socialist Republic of Vietnam", ISOCode3: "VNM", Capital: "Hanoi", ContinentCode: "AS", ContinentName: "Asia", CallingCode: "+84", TLD: ".vn", CurrencyCode: "VND", CurrencyName: "Vietnamese Dong", CurrencySymbol: "₫", Languages: "vi-VN", FlagEmoji: "🇻🇳", IsEU: false},
	"ID": {Name: "Indonesia", OfficialName: "Republic of Indonesia", ISOCode3: "IDN", Capital: "Jakarta", ContinentCode: "AS", ContinentName: "Asia", CallingCode: "+62", TLD: ".id", CurrencyCode: "IDR", CurrencyName: "Indonesian Rupiah", CurrencySymbol: "Rp", Languages: "id-ID", FlagEmoji: "🇮🇩", IsEU: false},
	"MY": {Name: "Malaysia", OfficialName: "Malaysia", ISOCode3: "MYS", Capital: "Kuala Lumpur", ContinentCode: "AS", ContinentName: "Asia", CallingCode: "+60", TLD: ".my", CurrencyCode: "MYR", CurrencyName: "Malaysian Ringgit", CurrencySymbol: "RM", Languages: "ms-MY,en-MY", FlagEmoji: "🇲🇾", IsEU: false},
	"PH": {Name: "Philippines", OfficialName: "Republic of the Philippines", ISOCode3: "PHL", Capital: "Manila", ContinentCode: "AS", ContinentName: "Asia", CallingCode: "+63", TLD: ".ph", CurrencyCode: "PHP", CurrencyName: "Philippine Peso", CurrencySymbol: "₱", Languages: "tl-PH,en-PH", FlagEmoji: "🇵🇭", IsEU: false},
	"AE": {Name: "United Arab Emirates", OfficialName: "United Arab Emirates", ISOCode3: "ARE", Capital: "Abu Dhabi", ContinentCode: "AS", ContinentName: "Asia", CallingCode: "+971", TLD: ".ae", CurrencyCode: "AED", CurrencyName: "UAE Dirham", CurrencySymbol: "د.إ", Languages: "ar-AE,en-AE", FlagEmoji: "🇦🇪", IsEU: false},
	"SA": {Name: "Saudi Arabia", OfficialName: "Kingdom of Saudi Arabia", ISOCode3: "SAU", Capital: "Riyadh", ContinentCode: "AS", ContinentName: "Asia", CallingCode: "+966", TLD: ".sa", CurrencyCode: "SAR", CurrencyName: "Saudi Riyal", CurrencySymbol: "﷼", Languages: "ar-SA", FlagEmoji: "🇸🇦", IsEU: false},
	"IL": {Name: "Israel", OfficialName: "State of Israel", ISOCode3: "ISR", Capital: "Jerusalem", ContinentCode: "AS", ContinentName: "Asia", CallingCode: "+972", TLD: ".il", CurrencyCode: "ILS", CurrencyName: "Israeli Shekel", CurrencySymbol: "₪", Languages: "he-IL,ar-IL", FlagEmoji: "🇮🇱", IsEU: false},
	"TR": {Name: "Turkey", OfficialName: "Republic of Türkiye", ISOCode3: "TUR", Capital: "Ankara", ContinentCode: "AS", ContinentName: "Asia", CallingCode: "+90", TLD: ".tr", CurrencyCode: "TRY", CurrencyName: "Turkish Lira", CurrencySymbol: "₺", Languages: "tr-TR", FlagEmoji: "🇹🇷", IsEU: false},
	"AU": {Name: "Australia", OfficialName: "Commonwealth of Australia", ISOCode3: "AUS", Capital: "Canberra", ContinentCode: "OC", ContinentName: "Oceania", CallingCode: "+61", TLD: ".au", CurrencyCode: "AUD", CurrencyName: "Australian Dollar", CurrencySymbol: "$", Languages: "en-AU", FlagEmoji: "🇦🇺", IsEU: false},
	"NZ": {Name: "New Zealand", OfficialName: "New Zealand", ISOCode3: "NZL", Capital: "Wellington", ContinentCode: "OC", ContinentName: "Oceania", CallingCode: "+64", TLD: ".nz", CurrencyCode: "NZD", CurrencyName: "New Zealand Dollar", CurrencySymbol: "$", Languages: "en-NZ,mi-NZ", FlagEmoji: "🇳🇿", IsEU: false},
	"BR": {Name: "Brazil", OfficialName: "Federative Republic of Brazil", ISOCode3: "BRA", Capital: "Brasília", ContinentCode: "SA", ContinentName: "South America", CallingCode: "+55", TLD: ".br", CurrencyCode: "BRL", CurrencyName: "Brazilian Real", CurrencySymbol: "R$", Languages: "pt-BR", FlagEmoji: "🇧🇷", IsEU: false},
	"AR": {Name: "Argentina", OfficialName: "Argentine Republic", ISOCode3: "ARG", Capital: "Buenos Aires", ContinentCode: "SA", ContinentName: "South America", CallingCode: "+54", TLD: ".ar", CurrencyCode: "ARS", CurrencyName: "Argentine Peso", CurrencySymbol: "$", Languages: "es-AR", FlagEmoji: "🇦🇷", IsEU: false},
	"CL": {Name: "Chile", OfficialName: "Republic of Chile", ISOCode3: "CHL", Capital: "Santiago", ContinentCode: "SA", ContinentName: "South America", CallingCode: "+56", TLD: ".cl", CurrencyCode: "CLP", CurrencyName: "Chilean Peso", CurrencySymbol: "$", Languages: "es-CL", FlagEmoji: "🇨🇱", IsEU: false},
	"CO": {Name: "Colombia", OfficialName: "Republic of Colombia", ISOCode3: "COL", Capital: "Bogotá", ContinentCode: "SA", ContinentName: "South America", CallingCode: "+57", TLD: ".co", CurrencyCode: "COP", CurrencyName: "Colombian Peso", CurrencySymbol: "$", Languages: "es-CO", FlagEmoji: "🇨🇴", IsEU: false},
	"ZA": {Name: "South Africa", OfficialName: "Republic of South Africa", ISOCode3: "ZAF", Capital: "Pretoria", ContinentCode: "AF", ContinentName: "Africa", CallingCode: "+27", TLD: ".za", CurrencyCode: "ZAR", CurrencyName: "South African Rand", CurrencySymbol: "R", Languages: "en-ZA,af-ZA,zu-ZA", FlagEmoji: "🇿🇦", IsEU: false},
	"NG": {Name: "Nigeria", OfficialName: "Federal Republic of Nigeria", ISOCode3: "NGA", Capital: "Abuja", ContinentCode: "AF", ContinentName: "Africa", CallingCode: "+234", TLD: ".ng", CurrencyCode: "NGN", CurrencyName: "Nigerian Naira", CurrencySymbol: "₦", Languages: "en-NG", FlagEmoji: "🇳🇬", IsEU: false},
	"EG": {Name: "Egypt", OfficialName: "Arab Republic of Egypt", ISOCode3: "EGY", Capital: "Cairo", ContinentCode: "AF", ContinentName: "Africa", CallingCode: "+20", TLD: ".eg", CurrencyCode: "EGP", CurrencyName: "Egyptian Pound", CurrencySymbol: "£", Languages: "ar-EG", FlagEmoji: "🇪🇬", IsEU: false},
	"KE": {Name: "Kenya", OfficialName: "Republic of Kenya", ISOCode3: "KEN", Capital: "Nairobi", ContinentCode: "AF", ContinentName: "Africa", CallingCode: "+254", TLD: ".ke", CurrencyCode: "KES", CurrencyName: "Kenyan Shilling", CurrencySymbol: "KSh", Languages: "sw-KE,en-KE", FlagEmoji: "🇰🇪", IsEU: false},}
