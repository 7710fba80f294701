package domain

// ISO code lookup tables. Country names follow the upstream dataset's
// spelling (e.g. "US", "Korea, South", "Burma"), not the official ISO short
// names. Entities absent from these tables get no code and are kept in the
// snapshot but skipped by per-entity file output.

// CountryCode maps an upstream country name to its 2-letter code. The
// synthetic World entity uses "World" so its file lands at world.json.
var CountryCode = map[string]string{
	"World":                  "World",
	"Afghanistan":            "AF",
	"Albania":                "AL",
	"Algeria":                "DZ",
	"Andorra":                "AD",
	"Angola":                 "AO",
	"Argentina":              "AR",
	"Armenia":                "AM",
	"Australia":              "AU",
	"Austria":                "AT",
	"Azerbaijan":             "AZ",
	"Bahamas":                "BS",
	"Bahrain":                "BH",
	"Bangladesh":             "BD",
	"Barbados":               "BB",
	"Belarus":                "BY",
	"Belgium":                "BE",
	"Belize":                 "BZ",
	"Benin":                  "BJ",
	"Bhutan":                 "BT",
	"Bolivia":                "BO",
	"Bosnia and Herzegovina": "BA",
	"Botswana":               "BW",
	"Brazil":                 "BR",
	"Brunei":                 "BN",
	"Bulgaria":               "BG",
	"Burkina Faso":           "BF",
	"Burma":                  "MM",
	"Burundi":                "BI",
	"Cabo Verde":             "CV",
	"Cambodia":               "KH",
	"Cameroon":               "CM",
	"Canada":                 "CA",
	"Central African Republic": "CF",
	"Chad":                   "TD",
	"Chile":                  "CL",
	"China":                  "CN",
	"Colombia":               "CO",
	"Congo (Brazzaville)":    "CG",
	"Congo (Kinshasa)":       "CD",
	"Costa Rica":             "CR",
	"Cote d'Ivoire":          "CI",
	"Croatia":                "HR",
	"Cuba":                   "CU",
	"Cyprus":                 "CY",
	"Czechia":                "CZ",
	"Denmark":                "DK",
	"Djibouti":               "DJ",
	"Dominica":               "DM",
	"Dominican Republic":     "DO",
	"Ecuador":                "EC",
	"Egypt":                  "EG",
	"El Salvador":            "SV",
	"Equatorial Guinea":      "GQ",
	"Eritrea":                "ER",
	"Estonia":                "EE",
	"Eswatini":               "SZ",
	"Ethiopia":               "ET",
	"Fiji":                   "FJ",
	"Finland":                "FI",
	"France":                 "FR",
	"Gabon":                  "GA",
	"Gambia":                 "GM",
	"Georgia":                "GE",
	"Germany":                "DE",
	"Ghana":                  "GH",
	"Greece":                 "GR",
	"Grenada":                "GD",
	"Guatemala":              "GT",
	"Guinea":                 "GN",
	"Guinea-Bissau":          "GW",
	"Guyana":                 "GY",
	"Haiti":                  "HT",
	"Honduras":               "HN",
	"Hungary":                "HU",
	"Iceland":                "IS",
	"India":                  "IN",
	"Indonesia":              "ID",
	"Iran":                   "IR",
	"Iraq":                   "IQ",
	"Ireland":                "IE",
	"Israel":                 "IL",
	"Italy":                  "IT",
	"Jamaica":                "JM",
	"Japan":                  "JP",
	"Jordan":                 "JO",
	"Kazakhstan":             "KZ",
	"Kenya":                  "KE",
	"Korea, South":           "KR",
	"Kosovo":                 "XK",
	"Kuwait":                 "KW",
	"Kyrgyzstan":             "KG",
	"Laos":                   "LA",
	"Latvia":                 "LV",
	"Lebanon":                "LB",
	"Lesotho":                "LS",
	"Liberia":                "LR",
	"Libya":                  "LY",
	"Liechtenstein":          "LI",
	"Lithuania":              "LT",
	"Luxembourg":             "LU",
	"Madagascar":             "MG",
	"Malawi":                 "MW",
	"Malaysia":               "MY",
	"Maldives":               "MV",
	"Mali":                   "ML",
	"Malta":                  "MT",
	"Mauritania":             "MR",
	"Mauritius":              "MU",
	"Mexico":                 "MX",
	"Moldova":                "MD",
	"Monaco":                 "MC",
	"Mongolia":               "MN",
	"Montenegro":             "ME",
	"Morocco":                "MA",
	"Mozambique":             "MZ",
	"Namibia":                "NA",
	"Nepal":                  "NP",
	"Netherlands":            "NL",
	"New Zealand":            "NZ",
	"Nicaragua":              "NI",
	"Niger":                  "NE",
	"Nigeria":                "NG",
	"North Macedonia":        "MK",
	"Norway":                 "NO",
	"Oman":                   "OM",
	"Pakistan":               "PK",
	"Panama":                 "PA",
	"Papua New Guinea":       "PG",
	"Paraguay":               "PY",
	"Peru":                   "PE",
	"Philippines":            "PH",
	"Poland":                 "PL",
	"Portugal":               "PT",
	"Qatar":                  "QA",
	"Romania":                "RO",
	"Russia":                 "RU",
	"Rwanda":                 "RW",
	"San Marino":             "SM",
	"Saudi Arabia":           "SA",
	"Senegal":                "SN",
	"Serbia":                 "RS",
	"Seychelles":             "SC",
	"Sierra Leone":           "SL",
	"Singapore":              "SG",
	"Slovakia":               "SK",
	"Slovenia":               "SI",
	"Somalia":                "SO",
	"South Africa":           "ZA",
	"South Sudan":            "SS",
	"Spain":                  "ES",
	"Sri Lanka":              "LK",
	"Sudan":                  "SD",
	"Suriname":               "SR",
	"Sweden":                 "SE",
	"Switzerland":            "CH",
	"Syria":                  "SY",
	"Tajikistan":             "TJ",
	"Tanzania":               "TZ",
	"Thailand":               "TH",
	"Timor-Leste":            "TL",
	"Togo":                   "TG",
	"Trinidad and Tobago":    "TT",
	"Tunisia":                "TN",
	"Turkey":                 "TR",
	"US":                     "US",
	"Uganda":                 "UG",
	"Ukraine":                "UA",
	"United Arab Emirates":   "AE",
	"United Kingdom":         "GB",
	"Uruguay":                "UY",
	"Uzbekistan":             "UZ",
	"Venezuela":              "VE",
	"Vietnam":                "VN",
	"Yemen":                  "YE",
	"Zambia":                 "ZM",
	"Zimbabwe":               "ZW",
}

// ProvinceCode maps a province/state name to a short code where one exists.
// Cruise-ship pseudo-regions and minor territories stay unmapped.
var ProvinceCode = map[string]string{
	// China
	"Anhui":          "AH",
	"Beijing":        "BJ",
	"Chongqing":      "CQ",
	"Fujian":         "FJ",
	"Gansu":          "GS",
	"Guangdong":      "GD",
	"Guangxi":        "GX",
	"Guizhou":        "GZ",
	"Hainan":         "HI",
	"Hebei":          "HE",
	"Heilongjiang":   "HL",
	"Henan":          "HA",
	"Hong Kong":      "HK",
	"Hubei":          "HB",
	"Hunan":          "HN",
	"Inner Mongolia": "NM",
	"Jiangsu":        "JS",
	"Jiangxi":        "JX",
	"Jilin":          "JL",
	"Liaoning":       "LN",
	"Macau":          "MO",
	"Ningxia":        "NX",
	"Qinghai":        "QH",
	"Shaanxi":        "SN",
	"Shandong":       "SD",
	"Shanghai":       "SH",
	"Shanxi":         "SX",
	"Sichuan":        "SC",
	"Taiwan":         "TW",
	"Tianjin":        "TJ",
	"Tibet":          "XZ",
	"Xinjiang":       "XJ",
	"Yunnan":         "YN",
	"Zhejiang":       "ZJ",
	// Australia
	"Australian Capital Territory": "ACT",
	"New South Wales":              "NSW",
	"Northern Territory":           "NT",
	"Queensland":                   "QLD",
	"South Australia":              "SA",
	"Tasmania":                     "TAS",
	"Victoria":                     "VIC",
	"Western Australia":            "WA",
	// Canada
	"Alberta":                   "AB",
	"British Columbia":          "BC",
	"Manitoba":                  "MB",
	"New Brunswick":             "NB",
	"Newfoundland and Labrador": "NL",
	"Northwest Territories":     "NT",
	"Nova Scotia":               "NS",
	"Nunavut":                   "NU",
	"Ontario":                   "ON",
	"Prince Edward Island":      "PE",
	"Quebec":                    "QC",
	"Saskatchewan":              "SK",
	"Yukon":                     "YT",
}

// ISO3To2 maps the vaccination source's 3-letter codes to the 2-letter codes
// used for file naming. OWID aggregate rows (continents, income groups) have
// no entry and are dropped; OWID_WRL maps to the synthetic World entity.
var ISO3To2 = map[string]string{
	"OWID_WRL": "World",
	"AFG":      "AF",
	"ALB":      "AL",
	"DZA":      "DZ",
	"AND":      "AD",
	"AGO":      "AO",
	"ARG":      "AR",
	"ARM":      "AM",
	"AUS":      "AU",
	"AUT":      "AT",
	"AZE":      "AZ",
	"BHS":      "BS",
	"BHR":      "BH",
	"BGD":      "BD",
	"BRB":      "BB",
	"BLR":      "BY",
	"BEL":      "BE",
	"BLZ":      "BZ",
	"BEN":      "BJ",
	"BTN":      "BT",
	"BOL":      "BO",
	"BIH":      "BA",
	"BWA":      "BW",
	"BRA":      "BR",
	"BRN":      "BN",
	"BGR":      "BG",
	"BFA":      "BF",
	"MMR":      "MM",
	"BDI":      "BI",
	"CPV":      "CV",
	"KHM":      "KH",
	"CMR":      "CM",
	"CAN":      "CA",
	"CAF":      "CF",
	"TCD":      "TD",
	"CHL":      "CL",
	"CHN":      "CN",
	"COL":      "CO",
	"COG":      "CG",
	"COD":      "CD",
	"CRI":      "CR",
	"CIV":      "CI",
	"HRV":      "HR",
	"CUB":      "CU",
	"CYP":      "CY",
	"CZE":      "CZ",
	"DNK":      "DK",
	"DJI":      "DJ",
	"DMA":      "DM",
	"DOM":      "DO",
	"ECU":      "EC",
	"EGY":      "EG",
	"SLV":      "SV",
	"GNQ":      "GQ",
	"ERI":      "ER",
	"EST":      "EE",
	"SWZ":      "SZ",
	"ETH":      "ET",
	"FJI":      "FJ",
	"FIN":      "FI",
	"FRA":      "FR",
	"GAB":      "GA",
	"GMB":      "GM",
	"GEO":      "GE",
	"DEU":      "DE",
	"GHA":      "GH",
	"GRC":      "GR",
	"GRD":      "GD",
	"GTM":      "GT",
	"GIN":      "GN",
	"GNB":      "GW",
	"GUY":      "GY",
	"HTI":      "HT",
	"HND":      "HN",
	"HUN":      "HU",
	"ISL":      "IS",
	"IND":      "IN",
	"IDN":      "ID",
	"IRN":      "IR",
	"IRQ":      "IQ",
	"IRL":      "IE",
	"ISR":      "IL",
	"ITA":      "IT",
	"JAM":      "JM",
	"JPN":      "JP",
	"JOR":      "JO",
	"KAZ":      "KZ",
	"KEN":      "KE",
	"KOR":      "KR",
	"OWID_KOS": "XK",
	"KWT":      "KW",
	"KGZ":      "KG",
	"LAO":      "LA",
	"LVA":      "LV",
	"LBN":      "LB",
	"LSO":      "LS",
	"LBR":      "LR",
	"LBY":      "LY",
	"LIE":      "LI",
	"LTU":      "LT",
	"LUX":      "LU",
	"MDG":      "MG",
	"MWI":      "MW",
	"MYS":      "MY",
	"MDV":      "MV",
	"MLI":      "ML",
	"MLT":      "MT",
	"MRT":      "MR",
	"MUS":      "MU",
	"MEX":      "MX",
	"MDA":      "MD",
	"MCO":      "MC",
	"MNG":      "MN",
	"MNE":      "ME",
	"MAR":      "MA",
	"MOZ":      "MZ",
	"NAM":      "NA",
	"NPL":      "NP",
	"NLD":      "NL",
	"NZL":      "NZ",
	"NIC":      "NI",
	"NER":      "NE",
	"NGA":      "NG",
	"MKD":      "MK",
	"NOR":      "NO",
	"OMN":      "OM",
	"PAK":      "PK",
	"PAN":      "PA",
	"PNG":      "PG",
	"PRY":      "PY",
	"PER":      "PE",
	"PHL":      "PH",
	"POL":      "PL",
	"PRT":      "PT",
	"QAT":      "QA",
	"ROU":      "RO",
	"RUS":      "RU",
	"RWA":      "RW",
	"SMR":      "SM",
	"SAU":      "SA",
	"SEN":      "SN",
	"SRB":      "RS",
	"SYC":      "SC",
	"SLE":      "SL",
	"SGP":      "SG",
	"SVK":      "SK",
	"SVN":      "SI",
	"SOM":      "SO",
	"ZAF":      "ZA",
	"SSD":      "SS",
	"ESP":      "ES",
	"LKA":      "LK",
	"SDN":      "SD",
	"SUR":      "SR",
	"SWE":      "SE",
	"CHE":      "CH",
	"SYR":      "SY",
	"TWN":      "TW",
	"TJK":      "TJ",
	"TZA":      "TZ",
	"THA":      "TH",
	"TLS":      "TL",
	"TGO":      "TG",
	"TTO":      "TT",
	"TUN":      "TN",
	"TUR":      "TR",
	"USA":      "US",
	"UGA":      "UG",
	"UKR":      "UA",
	"ARE":      "AE",
	"GBR":      "GB",
	"URY":      "UY",
	"UZB":      "UZ",
	"VEN":      "VE",
	"VNM":      "VN",
	"YEM":      "YE",
	"ZMB":      "ZM",
	"ZWE":      "ZW",
}
