package refdata

// languages maps ISO alpha-2 country codes to the language string exposed
// in the simple response, formatted "primary-REGION,fallback".
var languages = map[string]string{
	"US": "en-US,en",
	"GB": "en-GB,en",
	"CA": "en-CA,en,fr-CA,fr",
	"AU": "en-AU,en",
	"NZ": "en-NZ,en",
	"IE": "en-IE,en,ga",
	"DE": "de-DE,de",
	"AT": "de-AT,de",
	"CH": "de-CH,de,fr-CH,fr,it-CH,it",
	"FR": "fr-FR,fr",
	"BE": "nl-BE,nl,fr-BE,fr,de-BE,de",
	"NL": "nl-NL,nl",
	"ES": "es-ES,es",
	"IT": "it-IT,it",
	"PT": "pt-PT,pt",
	"PL": "pl-PL,pl",
	"SE": "sv-SE,sv",
	"NO": "nb-NO,no,nn-NO",
	"DK": "da-DK,da",
	"FI": "fi-FI,fi,sv-FI,sv",
	"GR": "el-GR,el",
	"CZ": "cs-CZ,cs",
	"SK": "sk-SK,sk",
	"HU": "hu-HU,hu",
	"RO": "ro-RO,ro",
	"BG": "bg-BG,bg",
	"HR": "hr-HR,hr",
	"SI": "sl-SI,sl",
	"RS": "sr-RS,sr",
	"UA": "uk-UA,uk",
	"RU": "ru-RU,ru",
	"BY": "be-BY,be,ru-BY,ru",
	"LT": "lt-LT,lt",
	"LV": "lv-LV,lv",
	"EE": "et-EE,et",
	"IS": "is-IS,is",
	"LU": "lb-LU,lb,fr-LU,fr,de-LU,de",
	"MT": "mt-MT,mt,en-MT,en",
	"CY": "el-CY,el,tr-CY,tr",
	"AL": "sq-AL,sq",
	"MK": "mk-MK,mk",
	"BA": "bs-BA,bs,hr-BA,hr,sr-BA,sr",
	"ME": "sr-ME,sr",
	"XK": "sq-XK,sq,sr-XK,sr",
	"MD": "ro-MD,ro",
	"CN": "zh-CN,zh",
	"TW": "zh-TW,zh",
	"HK": "zh-HK,zh,en-HK,en",
	"JP": "ja-JP,ja",
	"KR": "ko-KR,ko",
	"IN": "hi-IN,hi,en-IN,en",
	"PK": "ur-PK,ur,en-PK,en",
	"BD": "bn-BD,bn",
	"ID": "id-ID,id",
	"MY": "ms-MY,ms,en-MY,en",
	"SG": "en-SG,en,zh-SG,zh,ms-SG,ms,ta-SG,ta",
	"TH": "th-TH,th",
	"VN": "vi-VN,vi",
	"PH": "tl-PH,tl,en-PH,en",
	"MM": "my-MM,my",
	"KH": "km-KH,km",
	"LA": "lo-LA,lo",
	"NP": "ne-NP,ne",
	"LK": "si-LK,si,ta-LK,ta",
	"MN": "mn-MN,mn",
	"KZ": "kk-KZ,kk,ru-KZ,ru",
	"UZ": "uz-UZ,uz,ru-UZ,ru",
	"TM": "tk-TM,tk",
	"TJ": "tg-TJ,tg",
	"KG": "ky-KG,ky,ru-KG,ru",
	"AF": "ps-AF,ps,fa-AF,fa",
	"TR": "tr-TR,tr",
	"IR": "fa-IR,fa",
	"IQ": "ar-IQ,ar,ku-IQ,ku",
	"SA": "ar-SA,ar",
	"AE": "ar-AE,ar,en-AE,en",
	"IL": "he-IL,he,ar-IL,ar",
	"JO": "ar-JO,ar",
	"LB": "ar-LB,ar,fr-LB,fr",
	"SY": "ar-SY,ar",
	"KW": "ar-KW,ar",
	"QA": "ar-QA,ar",
	"BH": "ar-BH,ar",
	"OM": "ar-OM,ar",
	"YE": "ar-YE,ar",
	"EG": "ar-EG,ar",
	"ZA": "en-ZA,en,af-ZA,af,zu-ZA,zu",
	"NG": "en-NG,en",
	"KE": "sw-KE,sw,en-KE,en",
	"ET": "am-ET,am",
	"GH": "en-GH,en",
	"TZ": "sw-TZ,sw,en-TZ,en",
	"UG": "en-UG,en,sw-UG,sw",
	"MA": "ar-MA,ar,fr-MA,fr",
	"DZ": "ar-DZ,ar,fr-DZ,fr",
	"TN": "ar-TN,ar,fr-TN,fr",
	"LY": "ar-LY,ar",
	"SD": "ar-SD,ar",
	"SN": "fr-SN,fr",
	"CI": "fr-CI,fr",
	"CM": "fr-CM,fr,en-CM,en",
	"CD": "fr-CD,fr",
	"AO": "pt-AO,pt",
	"MZ": "pt-MZ,pt",
	"ZW": "en-ZW,en,sn-ZW,sn",
	"ZM": "en-ZM,en",
	"BW": "en-BW,en,tn-BW,tn",
	"NA": "en-NA,en,af-NA,af",
	"MU": "en-MU,en,fr-MU,fr",
	"MG": "mg-MG,mg,fr-MG,fr",
	"RW": "rw-RW,rw,en-RW,en,fr-RW,fr",
	"MX": "es-MX,es",
	"BR": "pt-BR,pt",
	"AR": "es-AR,es",
	"CO": "es-CO,es",
	"PE": "es-PE,es",
	"VE": "es-VE,es",
	"CL": "es-CL,es",
	"EC": "es-EC,es",
	"BO": "es-BO,es",
	"PY": "es-PY,es,gn-PY,gn",
	"UY": "es-UY,es",
	"GY": "en-GY,en",
	"SR": "nl-SR,nl",
	"CR": "es-CR,es",
	"PA": "es-PA,es",
	"NI": "es-NI,es",
	"HN": "es-HN,es",
	"SV": "es-SV,es",
	"GT": "es-GT,es",
	"BZ": "en-BZ,en,es-BZ,es",
	"CU": "es-CU,es",
	"DO": "es-DO,es",
	"PR": "es-PR,es,en-PR,en",
	"JM": "en-JM,en",
	"TT": "en-TT,en",
	"HT": "fr-HT,fr,ht-HT,ht",
	"FJ": "en-FJ,en,fj-FJ,fj",
	"PG": "en-PG,en",
	"NC": "fr-NC,fr",
	"PF": "fr-PF,fr",
	"GU": "en-GU,en,ch-GU,ch",}
