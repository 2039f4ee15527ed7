package legacydb

// regionNames resolves the region codes stored in city records. US and CA
// use two letter postal abbreviations; every other country uses its FIPS
// 10-4 subdivision code.
var regionNames = map[string]map[string]string{
	"US": {
		"AA": "Armed Forces Americas",
		"AE": "Armed Forces Europe, Middle East, & Canada",
		"AK": "Alaska",
		"AL": "Alabama",
		"AP": "Armed Forces Pacific",
		"AR": "Arkansas",
		"AS": "American Samoa",
		"AZ": "Arizona",
		"CA": "California",
		"CO": "Colorado",
		"CT": "Connecticut",
		"DC": "District of Columbia",
		"DE": "Delaware",
		"FL": "Florida",
		"FM": "Federated States of Micronesia",
		"GA": "Georgia",
		"GU": "Guam",
		"HI": "Hawaii",
		"IA": "Iowa",
		"ID": "Idaho",
		"IL": "Illinois",
		"IN": "Indiana",
		"KS": "Kansas",
		"KY": "Kentucky",
		"LA": "Louisiana",
		"MA": "Massachusetts",
		"MD": "Maryland",
		"ME": "Maine",
		"MH": "Marshall Islands",
		"MI": "Michigan",
		"MN": "Minnesota",
		"MO": "Missouri",
		"MP": "Northern Mariana Islands",
		"MS": "Mississippi",
		"MT": "Montana",
		"NC": "North Carolina",
		"ND": "North Dakota",
		"NE": "Nebraska",
		"NH": "New Hampshire",
		"NJ": "New Jersey",
		"NM": "New Mexico",
		"NV": "Nevada",
		"NY": "New York",
		"OH": "Ohio",
		"OK": "Oklahoma",
		"OR": "Oregon",
		"PA": "Pennsylvania",
		"PR": "Puerto Rico",
		"PW": "Palau",
		"RI": "Rhode Island",
		"SC": "South Carolina",
		"SD": "South Dakota",
		"TN": "Tennessee",
		"TX": "Texas",
		"UT": "Utah",
		"VA": "Virginia",
		"VI": "Virgin Islands",
		"VT": "Vermont",
		"WA": "Washington",
		"WI": "Wisconsin",
		"WV": "West Virginia",
		"WY": "Wyoming",
	},
	"CA": {
		"AB": "Alberta",
		"BC": "British Columbia",
		"MB": "Manitoba",
		"NB": "New Brunswick",
		"NL": "Newfoundland",
		"NS": "Nova Scotia",
		"NT": "Northwest Territories",
		"NU": "Nunavut",
		"ON": "Ontario",
		"PE": "Prince Edward Island",
		"QC": "Quebec",
		"SK": "Saskatchewan",
		"YT": "Yukon Territory",
	},
	"AR": {
		"01": "Buenos Aires",
		"02": "Catamarca",
		"03": "Chaco",
		"04": "Chubut",
		"05": "Cordoba",
		"06": "Corrientes",
		"07": "Distrito Federal",
		"08": "Entre Rios",
		"09": "Formosa",
		"10": "Jujuy",
		"11": "La Pampa",
		"12": "La Rioja",
		"13": "Mendoza",
		"14": "Misiones",
		"15": "Neuquen",
		"16": "Rio Negro",
		"17": "Salta",
		"18": "San Juan",
		"19": "San Luis",
		"20": "Santa Cruz",
		"21": "Santa Fe",
		"22": "Santiago del Estero",
		"23": "Tierra del Fuego",
		"24": "Tucuman",
	},
	"AT": {
		"01": "Burgenland",
		"02": "Karnten",
		"03": "Niederosterreich",
		"04": "Oberosterreich",
		"05": "Salzburg",
		"06": "Steiermark",
		"07": "Tirol",
		"08": "Vorarlberg",
		"09": "Wien",
	},
	"AU": {
		"01": "Australian Capital Territory",
		"02": "New South Wales",
		"03": "Northern Territory",
		"04": "Queensland",
		"05": "South Australia",
		"06": "Tasmania",
		"07": "Victoria",
		"08": "Western Australia",
	},
	"BE": {
		"01": "Antwerpen",
		"03": "Hainaut",
		"04": "Liege",
		"05": "Limburg",
		"06": "Luxembourg",
		"07": "Namur",
		"08": "Oost-Vlaanderen",
		"09": "West-Vlaanderen",
		"10": "Brabant Wallon",
		"11": "Brussels Hoofdstedelijk Gewest",
		"12": "Vlaams-Brabant",
		"13": "Flanders",
		"14": "Wallonia",
	},
	"BR": {
		"01": "Acre",
		"02": "Alagoas",
		"03": "Amapa",
		"04": "Amazonas",
		"05": "Bahia",
		"06": "Ceara",
		"07": "Distrito Federal",
		"08": "Espirito Santo",
		"11": "Mato Grosso do Sul",
		"13": "Maranhao",
		"14": "Mato Grosso",
		"15": "Minas Gerais",
		"16": "Para",
		"17": "Paraiba",
		"18": "Parana",
		"20": "Piaui",
		"21": "Rio de Janeiro",
		"22": "Rio Grande do Norte",
		"23": "Rio Grande do Sul",
		"24": "Rondonia",
		"25": "Roraima",
		"26": "Santa Catarina",
		"27": "Sao Paulo",
		"28": "Sergipe",
		"29": "Goias",
		"30": "Pernambuco",
		"31": "Tocantins",
	},
	"CH": {
		"01": "Aargau",
		"02": "Ausser-Rhoden",
		"03": "Basel-Landschaft",
		"04": "Basel-Stadt",
		"05": "Bern",
		"06": "Fribourg",
		"07": "Geneve",
		"08": "Glarus",
		"09": "Graubunden",
		"10": "Inner-Rhoden",
		"11": "Luzern",
		"12": "Neuchatel",
		"13": "Nidwalden",
		"14": "Obwalden",
		"15": "Sankt Gallen",
		"16": "Schaffhausen",
		"17": "Schwyz",
		"18": "Solothurn",
		"19": "Thurgau",
		"20": "Ticino",
		"21": "Uri",
		"22": "Valais",
		"23": "Vaud",
		"24": "Zug",
		"25": "Zurich",
		"26": "Jura",
	},
	"CN": {
		"01": "Anhui",
		"02": "Zhejiang",
		"03": "Jiangxi",
		"04": "Jiangsu",
		"05": "Jilin",
		"06": "Qinghai",
		"07": "Fujian",
		"08": "Heilongjiang",
		"09": "Henan",
		"10": "Hebei",
		"11": "Hunan",
		"12": "Hubei",
		"13": "Xinjiang",
		"14": "Xizang",
		"15": "Gansu",
		"16": "Guangxi",
		"18": "Guizhou",
		"19": "Liaoning",
		"20": "Nei Mongol",
		"21": "Ningxia",
		"22": "Beijing",
		"23": "Shanghai",
		"24": "Shanxi",
		"25": "Shandong",
		"26": "Shaanxi",
		"28": "Tianjin",
		"29": "Yunnan",
		"30": "Guangdong",
		"31": "Hainan",
		"32": "Sichuan",
		"33": "Chongqing",
	},
	"CZ": {
		"52": "Hlavni mesto Praha",
		"78": "Jihomoravsky kraj",
		"79": "Jihocesky kraj",
		"80": "Vysocina",
		"81": "Karlovarsky kraj",
		"82": "Kralovehradecky kraj",
		"83": "Liberecky kraj",
		"84": "Olomoucky kraj",
		"85": "Moravskoslezsky kraj",
		"86": "Pardubicky kraj",
		"87": "Plzensky kraj",
		"88": "Stredocesky kraj",
		"89": "Ustecky kraj",
		"90": "Zlinsky kraj",
	},
	"DE": {
		"01": "Baden-Wurttemberg",
		"02": "Bayern",
		"03": "Bremen",
		"04": "Hamburg",
		"05": "Hessen",
		"06": "Niedersachsen",
		"07": "Nordrhein-Westfalen",
		"08": "Rheinland-Pfalz",
		"09": "Saarland",
		"10": "Schleswig-Holstein",
		"11": "Brandenburg",
		"12": "Mecklenburg-Vorpommern",
		"13": "Sachsen",
		"14": "Sachsen-Anhalt",
		"15": "Thuringen",
		"16": "Berlin",
	},
	"DK": {
		"17": "Hovedstaden",
		"18": "Midtjylland",
		"19": "Nordjylland",
		"20": "Sjelland",
		"21": "Syddanmark",
	},
	"ES": {
		"07": "Islas Baleares",
		"27": "La Rioja",
		"29": "Madrid",
		"31": "Murcia",
		"32": "Navarra",
		"34": "Asturias",
		"39": "Cantabria",
		"51": "Andalucia",
		"52": "Aragon",
		"53": "Canarias",
		"54": "Castilla-La Mancha",
		"55": "Castilla y Leon",
		"56": "Catalonia",
		"57": "Extremadura",
		"58": "Galicia",
		"59": "Pais Vasco",
		"60": "Comunidad Valenciana",
	},
	"FI": {
		"01": "Aland",
		"06": "Lapland",
		"08": "Oulu",
		"13": "Southern Finland",
		"14": "Eastern Finland",
		"15": "Western Finland",
	},
	"FR": {
		"97": "Aquitaine",
		"98": "Auvergne",
		"99": "Basse-Normandie",
		"A1": "Bourgogne",
		"A2": "Bretagne",
		"A3": "Centre",
		"A4": "Champagne-Ardenne",
		"A5": "Corse",
		"A6": "Franche-Comte",
		"A7": "Haute-Normandie",
		"A8": "Ile-de-France",
		"A9": "Languedoc-Roussillon",
		"B1": "Limousin",
		"B2": "Lorraine",
		"B3": "Midi-Pyrenees",
		"B4": "Nord-Pas-de-Calais",
		"B5": "Pays de la Loire",
		"B6": "Picardie",
		"B7": "Poitou-Charentes",
		"B8": "Provence-Alpes-Cote d'Azur",
		"B9": "Rhone-Alpes",
		"C1": "Alsace",
	},
	"GB": {
		"A1": "Barking and Dagenham",
		"A2": "Barnet",
		"A3": "Barnsley",
		"A4": "Bath and North East Somerset",
		"A5": "Bedfordshire",
		"A6": "Bexley",
		"A7": "Birmingham",
		"A8": "Blackburn with Darwen",
		"A9": "Blackpool",
		"B1": "Bolton",
		"B2": "Bournemouth",
		"B3": "Bracknell Forest",
		"B4": "Bradford",
		"B5": "Brent",
		"B6": "Brighton and Hove",
		"B7": "Bristol, City of",
		"B8": "Bromley",
		"B9": "Buckinghamshire",
		"C1": "Bury",
		"C2": "Calderdale",
		"C3": "Cambridgeshire",
		"C4": "Camden",
		"C5": "Cheshire",
		"C6": "Cornwall",
		"C7": "Coventry",
		"C8": "Croydon",
		"C9": "Cumbria",
		"D1": "Darlington",
		"D2": "Derby",
		"D3": "Derbyshire",
		"D4": "Devon",
		"D5": "Doncaster",
		"D6": "Dorset",
		"D7": "Dudley",
		"D8": "Durham",
		"D9": "Ealing",
		"E1": "East Riding of Yorkshire",
		"E2": "East Sussex",
		"E3": "Enfield",
		"E4": "Essex",
		"E5": "Gateshead",
		"E6": "Gloucestershire",
		"E7": "Greenwich",
		"E8": "Hackney",
		"E9": "Halton",
		"F1": "Hammersmith and Fulham",
		"F2": "Hampshire",
		"F3": "Haringey",
		"F4": "Harrow",
		"F5": "Hartlepool",
		"F6": "Havering",
		"F7": "Herefordshire",
		"F8": "Hertford",
		"F9": "Hillingdon",
		"G1": "Hounslow",
		"G2": "Isle of Wight",
		"G3": "Islington",
		"G4": "Kensington and Chelsea",
		"G5": "Kent",
		"G6": "Kingston upon Hull, City of",
		"G7": "Kingston upon Thames",
		"G8": "Kirklees",
		"G9": "Knowsley",
		"H1": "Lambeth",
		"H2": "Lancashire",
		"H3": "Leeds",
		"H4": "Leicester",
		"H5": "Leicestershire",
		"H6": "Lewisham",
		"H7": "Lincolnshire",
		"H8": "Liverpool",
		"H9": "London, City of",
		"I1": "Luton",
		"I2": "Manchester",
		"I3": "Medway",
		"I4": "Merton",
		"I5": "Middlesbrough",
		"I6": "Milton Keynes",
		"I7": "Newcastle upon Tyne",
		"I8": "Newham",
		"I9": "Norfolk",
		"J1": "Northamptonshire",
		"J2": "North East Lincolnshire",
		"J3": "North Lincolnshire",
		"J4": "North Somerset",
		"J5": "North Tyneside",
		"J6": "Northumberland",
		"J7": "North Yorkshire",
		"J8": "Nottingham",
		"J9": "Nottinghamshire",
		"K1": "Oldham",
		"K2": "Oxfordshire",
		"K3": "Peterborough",
		"K4": "Plymouth",
		"K5": "Poole",
		"K6": "Portsmouth",
		"K7": "Reading",
		"K8": "Redbridge",
		"K9": "Redcar and Cleveland",
		"L1": "Richmond upon Thames",
		"L2": "Rochdale",
		"L3": "Rotherham",
		"L4": "Rutland",
		"L5": "Salford",
		"L6": "Shropshire",
		"L7": "Sandwell",
		"L8": "Sefton",
		"L9": "Sheffield",
		"M1": "Slough",
		"M2": "Solihull",
		"M3": "Somerset",
		"M4": "Southampton",
		"M5": "Southend-on-Sea",
		"M6": "South Gloucestershire",
		"M7": "South Tyneside",
		"M8": "Southwark",
		"M9": "Staffordshire",
		"N1": "St. Helens",
		"N2": "Stockport",
		"N3": "Stockton-on-Tees",
		"N4": "Stoke-on-Trent",
		"N5": "Suffolk",
		"N6": "Sunderland",
		"N7": "Surrey",
		"N8": "Sutton",
		"N9": "Swindon",
		"O1": "Tameside",
		"O2": "Telford and Wrekin",
		"O3": "Thurrock",
		"O4": "Torbay",
		"O5": "Tower Hamlets",
		"O6": "Trafford",
		"O7": "Wakefield",
		"O8": "Walsall",
		"O9": "Waltham Forest",
		"P1": "Wandsworth",
		"P2": "Warrington",
		"P3": "Warwickshire",
		"P4": "West Berkshire",
		"P5": "Westminster",
		"P6": "West Sussex",
		"P7": "Wigan",
		"P8": "Wiltshire",
		"P9": "Windsor and Maidenhead",
		"Q1": "Wirral",
		"Q2": "Wokingham",
		"Q3": "Wolverhampton",
		"Q4": "Worcestershire",
		"Q5": "York",
		"Q6": "Antrim",
		"Q7": "Ards",
		"Q8": "Armagh",
		"Q9": "Ballymena",
		"R1": "Ballymoney",
		"R2": "Banbridge",
		"R3": "Belfast",
		"R4": "Carrickfergus",
		"R5": "Castlereagh",
		"R6": "Coleraine",
		"R7": "Cookstown",
		"R8": "Craigavon",
		"R9": "Down",
		"S1": "Dungannon",
		"S2": "Fermanagh",
		"S3": "Larne",
		"S4": "Limavady",
		"S5": "Lisburn",
		"S6": "Derry",
		"S7": "Magherafelt",
		"S8": "Moyle",
		"S9": "Newry and Mourne",
		"T1": "Newtownabbey",
		"T2": "North Down",
		"T3": "Omagh",
		"T4": "Strabane",
		"T5": "Aberdeen City",
		"T6": "Aberdeenshire",
		"T7": "Angus",
		"T8": "Argyll and Bute",
		"T9": "Scottish Borders, The",
		"U1": "Clackmannanshire",
		"U2": "Dumfries and Galloway",
		"U3": "Dundee City",
		"U4": "East Ayrshire",
		"U5": "East Dunbartonshire",
		"U6": "East Lothian",
		"U7": "East Renfrewshire",
		"U8": "Edinburgh, City of",
		"U9": "Falkirk",
		"V1": "Fife",
		"V2": "Glasgow City",
		"V3": "Highland",
		"V4": "Inverclyde",
		"V5": "Midlothian",
		"V6": "Moray",
		"V7": "North Ayrshire",
		"V8": "North Lanarkshire",
		"V9": "Orkney",
		"W1": "Perth and Kinross",
		"W2": "Renfrewshire",
		"W3": "Shetland Islands",
		"W4": "South Ayrshire",
		"W5": "South Lanarkshire",
		"W6": "Stirling",
		"W7": "West Dunbartonshire",
		"W8": "Eilean Siar",
		"W9": "West Lothian",
		"X1": "Isle of Anglesey",
		"X2": "Blaenau Gwent",
		"X3": "Bridgend",
		"X4": "Caerphilly",
		"X5": "Cardiff",
		"X6": "Ceredigion",
		"X7": "Carmarthenshire",
		"X8": "Conwy",
		"X9": "Denbighshire",
		"Y1": "Flintshire",
		"Y2": "Gwynedd",
		"Y3": "Merthyr Tydfil",
		"Y4": "Monmouthshire",
		"Y5": "Neath Port Talbot",
		"Y6": "Newport",
		"Y7": "Pembrokeshire",
		"Y8": "Powys",
		"Y9": "Rhondda Cynon Taff",
		"Z1": "Swansea",
		"Z2": "Torfaen",
		"Z3": "Vale of Glamorgan, The",
		"Z4": "Wrexham",
		"Z5": "Bedfordshire",
		"Z6": "Central Bedfordshire",
		"Z7": "Cheshire East",
		"Z8": "Cheshire West and Chester",
		"Z9": "Isles of Scilly",
	},
	"HU": {
		"01": "Bacs-Kiskun",
		"02": "Baranya",
		"03": "Bekes",
		"04": "Borsod-Abauj-Zemplen",
		"05": "Budapest",
		"06": "Csongrad",
		"08": "Fejer",
		"09": "Gyor-Moson-Sopron",
		"10": "Hajdu-Bihar",
		"11": "Heves",
		"12": "Komarom-Esztergom",
		"14": "Nograd",
		"16": "Pest",
		"17": "Somogy",
		"18": "Szabolcs-Szatmar-Bereg",
		"20": "Jasz-Nagykun-Szolnok",
		"21": "Tolna",
		"22": "Vas",
		"23": "Veszprem",
		"24": "Zala",
	},
	"IE": {
		"01": "Carlow",
		"02": "Cavan",
		"03": "Clare",
		"04": "Cork",
		"06": "Donegal",
		"07": "Dublin",
		"10": "Galway",
		"11": "Kerry",
		"12": "Kildare",
		"13": "Kilkenny",
		"14": "Leitrim",
		"15": "Laois",
		"16": "Limerick",
		"18": "Longford",
		"19": "Louth",
		"20": "Mayo",
		"21": "Meath",
		"22": "Monaghan",
		"23": "Offaly",
		"24": "Roscommon",
		"25": "Sligo",
		"26": "Tipperary",
		"27": "Waterford",
		"29": "Westmeath",
		"30": "Wexford",
		"31": "Wicklow",
	},
	"IN": {
		"01": "Andaman and Nicobar Islands",
		"02": "Andhra Pradesh",
		"03": "Assam",
		"05": "Chandigarh",
		"06": "Dadra and Nagar Haveli",
		"07": "Delhi",
		"09": "Gujarat",
		"10": "Haryana",
		"11": "Himachal Pradesh",
		"12": "Jammu and Kashmir",
		"13": "Kerala",
		"14": "Lakshadweep",
		"16": "Maharashtra",
		"17": "Manipur",
		"18": "Meghalaya",
		"19": "Karnataka",
		"20": "Nagaland",
		"21": "Orissa",
		"22": "Puducherry",
		"23": "Punjab",
		"24": "Rajasthan",
		"25": "Tamil Nadu",
		"26": "Tripura",
		"28": "West Bengal",
		"29": "Sikkim",
		"30": "Arunachal Pradesh",
		"31": "Mizoram",
		"32": "Daman and Diu",
		"33": "Goa",
		"34": "Bihar",
		"35": "Madhya Pradesh",
		"36": "Uttar Pradesh",
		"37": "Chhattisgarh",
		"38": "Jharkhand",
		"39": "Uttarakhand",
	},
	"IT": {
		"01": "Abruzzi",
		"02": "Basilicata",
		"03": "Calabria",
		"04": "Campania",
		"05": "Emilia-Romagna",
		"06": "Friuli-Venezia Giulia",
		"07": "Lazio",
		"08": "Liguria",
		"09": "Lombardia",
		"10": "Marche",
		"11": "Molise",
		"12": "Piemonte",
		"13": "Puglia",
		"14": "Sardegna",
		"15": "Sicilia",
		"16": "Toscana",
		"17": "Trentino-Alto Adige",
		"18": "Umbria",
		"19": "Valle d'Aosta",
		"20": "Veneto",
	},
	"JP": {
		"01": "Aichi",
		"02": "Akita",
		"03": "Aomori",
		"04": "Chiba",
		"05": "Ehime",
		"06": "Fukui",
		"07": "Fukuoka",
		"08": "Fukushima",
		"09": "Gifu",
		"10": "Gumma",
		"11": "Hiroshima",
		"12": "Hokkaido",
		"13": "Hyogo",
		"14": "Ibaraki",
		"15": "Ishikawa",
		"16": "Iwate",
		"17": "Kagawa",
		"18": "Kagoshima",
		"19": "Kanagawa",
		"20": "Kochi",
		"21": "Kumamoto",
		"22": "Kyoto",
		"23": "Mie",
		"24": "Miyagi",
		"25": "Miyazaki",
		"26": "Nagano",
		"27": "Nagasaki",
		"28": "Nara",
		"29": "Niigata",
		"30": "Oita",
		"31": "Okayama",
		"32": "Osaka",
		"33": "Saga",
		"34": "Saitama",
		"35": "Shiga",
		"36": "Shimane",
		"37": "Shizuoka",
		"38": "Tochigi",
		"39": "Tokushima",
		"40": "Tokyo",
		"41": "Tottori",
		"42": "Toyama",
		"43": "Wakayama",
		"44": "Yamagata",
		"45": "Yamaguchi",
		"46": "Yamanashi",
		"47": "Okinawa",
	},
	"KR": {
		"01": "Cheju-do",
		"03": "Cholla-bukto",
		"05": "Ch'ungch'ong-bukto",
		"06": "Kangwon-do",
		"10": "Pusan-jikhalsi",
		"11": "Seoul-t'ukpyolsi",
		"12": "Inch'on-jikhalsi",
		"13": "Kyonggi-do",
		"14": "Kyongsang-bukto",
		"15": "Taegu-jikhalsi",
		"16": "Cholla-namdo",
		"17": "Ch'ungch'ong-namdo",
		"18": "Kwangju-jikhalsi",
		"19": "Taejon-jikhalsi",
		"20": "Kyongsang-namdo",
		"21": "Ulsan-gwangyoksi",
	},
	"MX": {
		"01": "Aguascalientes",
		"02": "Baja California",
		"03": "Baja California Sur",
		"04": "Campeche",
		"05": "Chiapas",
		"06": "Chihuahua",
		"07": "Coahuila de Zaragoza",
		"08": "Colima",
		"09": "Distrito Federal",
		"10": "Durango",
		"11": "Guanajuato",
		"12": "Guerrero",
		"13": "Hidalgo",
		"14": "Jalisco",
		"15": "Mexico",
		"16": "Michoacan de Ocampo",
		"17": "Morelos",
		"18": "Nayarit",
		"19": "Nuevo Leon",
		"20": "Oaxaca",
		"21": "Puebla",
		"22": "Queretaro de Arteaga",
		"23": "Quintana Roo",
		"24": "San Luis Potosi",
		"25": "Sinaloa",
		"26": "Sonora",
		"27": "Tabasco",
		"28": "Tamaulipas",
		"29": "Tlaxcala",
		"30": "Veracruz-Llave",
		"31": "Yucatan",
		"32": "Zacatecas",
	},
	"NL": {
		"01": "Drenthe",
		"02": "Friesland",
		"03": "Gelderland",
		"04": "Groningen",
		"05": "Limburg",
		"06": "Noord-Brabant",
		"07": "Noord-Holland",
		"09": "Utrecht",
		"10": "Zeeland",
		"11": "Zuid-Holland",
		"15": "Overijssel",
		"16": "Flevoland",
	},
	"NO": {
		"01": "Akershus",
		"02": "Aust-Agder",
		"04": "Buskerud",
		"05": "Finnmark",
		"06": "Hedmark",
		"07": "Hordaland",
		"08": "More og Romsdal",
		"09": "Nordland",
		"10": "Nord-Trondelag",
		"11": "Oppland",
		"12": "Oslo",
		"13": "Ostfold",
		"14": "Rogaland",
		"15": "Sogn og Fjordane",
		"16": "Sor-Trondelag",
		"17": "Telemark",
		"18": "Troms",
		"19": "Vest-Agder",
		"20": "Vestfold",
	},
	"NZ": {
		"E7": "Auckland",
		"E8": "Bay of Plenty",
		"E9": "Canterbury",
		"F1": "Gisborne",
		"F2": "Hawke's Bay",
		"F3": "Manawatu-Wanganui",
		"F4": "Marlborough",
		"F5": "Nelson",
		"F6": "Northland",
		"F7": "Otago",
		"F8": "Southland",
		"F9": "Taranaki",
		"G1": "Waikato",
		"G2": "Wellington",
		"G3": "West Coast",
	},
	"PL": {
		"72": "Dolnoslaskie",
		"73": "Kujawsko-Pomorskie",
		"74": "Lodzkie",
		"75": "Lubelskie",
		"76": "Lubuskie",
		"77": "Malopolskie",
		"78": "Mazowieckie",
		"79": "Opolskie",
		"80": "Podkarpackie",
		"81": "Podlaskie",
		"82": "Pomorskie",
		"83": "Slaskie",
		"84": "Swietokrzyskie",
		"85": "Warminsko-Mazurskie",
		"86": "Wielkopolskie",
		"87": "Zachodniopomorskie",
	},
	"PT": {
		"02": "Aveiro",
		"03": "Beja",
		"04": "Braga",
		"05": "Braganca",
		"06": "Castelo Branco",
		"07": "Coimbra",
		"08": "Evora",
		"09": "Faro",
		"10": "Madeira",
		"11": "Guarda",
		"13": "Leiria",
		"14": "Lisboa",
		"16": "Portalegre",
		"17": "Porto",
		"18": "Santarem",
		"19": "Setubal",
		"20": "Viana do Castelo",
		"21": "Vila Real",
		"22": "Viseu",
		"23": "Azores",
	},
	"SE": {
		"02": "Blekinge Lan",
		"03": "Gavleborgs Lan",
		"05": "Gotlands Lan",
		"06": "Hallands Lan",
		"07": "Jamtlands Lan",
		"08": "Jonkopings Lan",
		"09": "Kalmar Lan",
		"10": "Dalarnas Lan",
		"12": "Kronobergs Lan",
		"14": "Norrbottens Lan",
		"15": "Orebro Lan",
		"16": "Ostergotlands Lan",
		"18": "Sodermanlands Lan",
		"21": "Uppsala Lan",
		"22": "Varmlands Lan",
		"23": "Vasterbottens Lan",
		"24": "Vasternorrlands Lan",
		"25": "Vastmanlands Lan",
		"26": "Stockholms Lan",
		"27": "Skane Lan",
		"28": "Vastra Gotaland",
	},
	"ZA": {
		"02": "KwaZulu-Natal",
		"03": "Free State",
		"05": "Eastern Cape",
		"06": "Gauteng",
		"07": "Mpumalanga",
		"08": "Northern Cape",
		"09": "Limpopo",
		"10": "North-West",
		"11": "Western Cape",
	},
}

// RegionName returns the display name of a region code within a country.
// Codes without a known name are returned unchanged.
func RegionName(countryCode, regionCode string) string {
	if name, ok := regionNames[countryCode][regionCode]; ok {
		return name
	}
	return regionCode
}
