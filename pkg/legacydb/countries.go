package legacydb

// Country is an entry of the country table indexed by the country byte of a
// city record, or by the leaf offset of a Country edition database.
type Country struct {
	Code      string
	Name      string
	Continent string
}

// continentNames maps the two letter continent codes to display names.
var continentNames = map[string]string{
	"AF": "Africa",
	"AN": "Antarctica",
	"AS": "Asia",
	"EU": "Europe",
	"NA": "North America",
	"OC": "Oceania",
	"SA": "South America",
}

// ContinentName returns the display name of a continent code, or an empty
// string for unknown codes.
func ContinentName(code string) string {
	return continentNames[code]
}

// DefaultCountries returns a copy of the country table shipped with the
// legacy databases.
func DefaultCountries() []Country {
	countries := make([]Country, len(defaultCountries))
	copy(countries, defaultCountries[:])
	return countries
}

var defaultCountries = [256]Country{
	{"--", "N/A", "--"},
	{"AP", "Asia/Pacific Region", "AS"},
	{"EU", "Europe", "EU"},
	{"AD", "Andorra", "EU"},
	{"AE", "United Arab Emirates", "AS"},
	{"AF", "Afghanistan", "AS"},
	{"AG", "Antigua and Barbuda", "NA"},
	{"AI", "Anguilla", "NA"},
	{"AL", "Albania", "EU"},
	{"AM", "Armenia", "AS"},
	// 10
	{"CW", "Curacao", "NA"},
	{"AO", "Angola", "AF"},
	{"AQ", "Antarctica", "AN"},
	{"AR", "Argentina", "SA"},
	{"AS", "American Samoa", "OC"},
	{"AT", "Austria", "EU"},
	{"AU", "Australia", "OC"},
	{"AW", "Aruba", "NA"},
	{"AZ", "Azerbaijan", "AS"},
	{"BA", "Bosnia and Herzegovina", "EU"},
	// 20
	{"BB", "Barbados", "NA"},
	{"BD", "Bangladesh", "AS"},
	{"BE", "Belgium", "EU"},
	{"BF", "Burkina Faso", "AF"},
	{"BG", "Bulgaria", "EU"},
	{"BH", "Bahrain", "AS"},
	{"BI", "Burundi", "AF"},
	{"BJ", "Benin", "AF"},
	{"BM", "Bermuda", "NA"},
	{"BN", "Brunei Darussalam", "AS"},
	// 30
	{"BO", "Bolivia", "SA"},
	{"BR", "Brazil", "SA"},
	{"BS", "Bahamas", "NA"},
	{"BT", "Bhutan", "AS"},
	{"BV", "Bouvet Island", "AN"},
	{"BW", "Botswana", "AF"},
	{"BY", "Belarus", "EU"},
	{"BZ", "Belize", "NA"},
	{"CA", "Canada", "NA"},
	{"CC", "Cocos (Keeling) Islands", "AS"},
	// 40
	{"CD", "Congo, The Democratic Republic of the", "AF"},
	{"CF", "Central African Republic", "AF"},
	{"CG", "Congo", "AF"},
	{"CH", "Switzerland", "EU"},
	{"CI", "Cote D'Ivoire", "AF"},
	{"CK", "Cook Islands", "OC"},
	{"CL", "Chile", "SA"},
	{"CM", "Cameroon", "AF"},
	{"CN", "China", "AS"},
	{"CO", "Colombia", "SA"},
	// 50
	{"CR", "Costa Rica", "NA"},
	{"CU", "Cuba", "NA"},
	{"CV", "Cape Verde", "AF"},
	{"CX", "Christmas Island", "AS"},
	{"CY", "Cyprus", "AS"},
	{"CZ", "Czech Republic", "EU"},
	{"DE", "Germany", "EU"},
	{"DJ", "Djibouti", "AF"},
	{"DK", "Denmark", "EU"},
	{"DM", "Dominica", "NA"},
	// 60
	{"DO", "Dominican Republic", "NA"},
	{"DZ", "Algeria", "AF"},
	{"EC", "Ecuador", "SA"},
	{"EE", "Estonia", "EU"},
	{"EG", "Egypt", "AF"},
	{"EH", "Western Sahara", "AF"},
	{"ER", "Eritrea", "AF"},
	{"ES", "Spain", "EU"},
	{"ET", "Ethiopia", "AF"},
	{"FI", "Finland", "EU"},
	// 70
	{"FJ", "Fiji", "OC"},
	{"FK", "Falkland Islands (Malvinas)", "SA"},
	{"FM", "Micronesia, Federated States of", "OC"},
	{"FO", "Faroe Islands", "EU"},
	{"FR", "France", "EU"},
	{"SX", "Sint Maarten (Dutch part)", "NA"},
	{"GA", "Gabon", "AF"},
	{"GB", "United Kingdom", "EU"},
	{"GD", "Grenada", "NA"},
	{"GE", "Georgia", "AS"},
	// 80
	{"GF", "French Guiana", "SA"},
	{"GH", "Ghana", "AF"},
	{"GI", "Gibraltar", "EU"},
	{"GL", "Greenland", "NA"},
	{"GM", "Gambia", "AF"},
	{"GN", "Guinea", "AF"},
	{"GP", "Guadeloupe", "NA"},
	{"GQ", "Equatorial Guinea", "AF"},
	{"GR", "Greece", "EU"},
	{"GS", "South Georgia and the South Sandwich Islands", "AN"},
	// 90
	{"GT", "Guatemala", "NA"},
	{"GU", "Guam", "OC"},
	{"GW", "Guinea-Bissau", "AF"},
	{"GY", "Guyana", "SA"},
	{"HK", "Hong Kong", "AS"},
	{"HM", "Heard Island and McDonald Islands", "AN"},
	{"HN", "Honduras", "NA"},
	{"HR", "Croatia", "EU"},
	{"HT", "Haiti", "NA"},
	{"HU", "Hungary", "EU"},
	// 100
	{"ID", "Indonesia", "AS"},
	{"IE", "Ireland", "EU"},
	{"IL", "Israel", "AS"},
	{"IN", "India", "AS"},
	{"IO", "British Indian Ocean Territory", "AS"},
	{"IQ", "Iraq", "AS"},
	{"IR", "Iran, Islamic Republic of", "AS"},
	{"IS", "Iceland", "EU"},
	{"IT", "Italy", "EU"},
	{"JM", "Jamaica", "NA"},
	// 110
	{"JO", "Jordan", "AS"},
	{"JP", "Japan", "AS"},
	{"KE", "Kenya", "AF"},
	{"KG", "Kyrgyzstan", "AS"},
	{"KH", "Cambodia", "AS"},
	{"KI", "Kiribati", "OC"},
	{"KM", "Comoros", "AF"},
	{"KN", "Saint Kitts and Nevis", "NA"},
	{"KP", "Korea, Democratic People's Republic of", "AS"},
	{"KR", "Korea, Republic of", "AS"},
	// 120
	{"KW", "Kuwait", "AS"},
	{"KY", "Cayman Islands", "NA"},
	{"KZ", "Kazakhstan", "AS"},
	{"LA", "Lao People's Democratic Republic", "AS"},
	{"LB", "Lebanon", "AS"},
	{"LC", "Saint Lucia", "NA"},
	{"LI", "Liechtenstein", "EU"},
	{"LK", "Sri Lanka", "AS"},
	{"LR", "Liberia", "AF"},
	{"LS", "Lesotho", "AF"},
	// 130
	{"LT", "Lithuania", "EU"},
	{"LU", "Luxembourg", "EU"},
	{"LV", "Latvia", "EU"},
	{"LY", "Libya", "AF"},
	{"MA", "Morocco", "AF"},
	{"MC", "Monaco", "EU"},
	{"MD", "Moldova, Republic of", "EU"},
	{"MG", "Madagascar", "AF"},
	{"MH", "Marshall Islands", "OC"},
	{"MK", "Macedonia", "EU"},
	// 140
	{"ML", "Mali", "AF"},
	{"MM", "Myanmar", "AS"},
	{"MN", "Mongolia", "AS"},
	{"MO", "Macau", "AS"},
	{"MP", "Northern Mariana Islands", "OC"},
	{"MQ", "Martinique", "NA"},
	{"MR", "Mauritania", "AF"},
	{"MS", "Montserrat", "NA"},
	{"MT", "Malta", "EU"},
	{"MU", "Mauritius", "AF"},
	// 150
	{"MV", "Maldives", "AS"},
	{"MW", "Malawi", "AF"},
	{"MX", "Mexico", "NA"},
	{"MY", "Malaysia", "AS"},
	{"MZ", "Mozambique", "AF"},
	{"NA", "Namibia", "AF"},
	{"NC", "New Caledonia", "OC"},
	{"NE", "Niger", "AF"},
	{"NF", "Norfolk Island", "OC"},
	{"NG", "Nigeria", "AF"},
	// 160
	{"NI", "Nicaragua", "NA"},
	{"NL", "Netherlands", "EU"},
	{"NO", "Norway", "EU"},
	{"NP", "Nepal", "AS"},
	{"NR", "Nauru", "OC"},
	{"NU", "Niue", "OC"},
	{"NZ", "New Zealand", "OC"},
	{"OM", "Oman", "AS"},
	{"PA", "Panama", "NA"},
	{"PE", "Peru", "SA"},
	// 170
	{"PF", "French Polynesia", "OC"},
	{"PG", "Papua New Guinea", "OC"},
	{"PH", "Philippines", "AS"},
	{"PK", "Pakistan", "AS"},
	{"PL", "Poland", "EU"},
	{"PM", "Saint Pierre and Miquelon", "NA"},
	{"PN", "Pitcairn Islands", "OC"},
	{"PR", "Puerto Rico", "NA"},
	{"PS", "Palestinian Territory", "AS"},
	{"PT", "Portugal", "EU"},
	// 180
	{"PW", "Palau", "OC"},
	{"PY", "Paraguay", "SA"},
	{"QA", "Qatar", "AS"},
	{"RE", "Reunion", "AF"},
	{"RO", "Romania", "EU"},
	{"RU", "Russian Federation", "EU"},
	{"RW", "Rwanda", "AF"},
	{"SA", "Saudi Arabia", "AS"},
	{"SB", "Solomon Islands", "OC"},
	{"SC", "Seychelles", "AF"},
	// 190
	{"SD", "Sudan", "AF"},
	{"SE", "Sweden", "EU"},
	{"SG", "Singapore", "AS"},
	{"SH", "Saint Helena", "AF"},
	{"SI", "Slovenia", "EU"},
	{"SJ", "Svalbard and Jan Mayen", "EU"},
	{"SK", "Slovakia", "EU"},
	{"SL", "Sierra Leone", "AF"},
	{"SM", "San Marino", "EU"},
	{"SN", "Senegal", "AF"},
	// 200
	{"SO", "Somalia", "AF"},
	{"SR", "Suriname", "SA"},
	{"ST", "Sao Tome and Principe", "AF"},
	{"SV", "El Salvador", "NA"},
	{"SY", "Syrian Arab Republic", "AS"},
	{"SZ", "Swaziland", "AF"},
	{"TC", "Turks and Caicos Islands", "NA"},
	{"TD", "Chad", "AF"},
	{"TF", "French Southern Territories", "AN"},
	{"TG", "Togo", "AF"},
	// 210
	{"TH", "Thailand", "AS"},
	{"TJ", "Tajikistan", "AS"},
	{"TK", "Tokelau", "OC"},
	{"TM", "Turkmenistan", "AS"},
	{"TN", "Tunisia", "AF"},
	{"TO", "Tonga", "OC"},
	{"TL", "Timor-Leste", "AS"},
	{"TR", "Turkey", "EU"},
	{"TT", "Trinidad and Tobago", "NA"},
	{"TV", "Tuvalu", "OC"},
	// 220
	{"TW", "Taiwan", "AS"},
	{"TZ", "Tanzania, United Republic of", "AF"},
	{"UA", "Ukraine", "EU"},
	{"UG", "Uganda", "AF"},
	{"UM", "United States Minor Outlying Islands", "OC"},
	{"US", "United States", "NA"},
	{"UY", "Uruguay", "SA"},
	{"UZ", "Uzbekistan", "AS"},
	{"VA", "Holy See (Vatican City State)", "EU"},
	{"VC", "Saint Vincent and the Grenadines", "NA"},
	// 230
	{"VE", "Venezuela", "SA"},
	{"VG", "Virgin Islands, British", "NA"},
	{"VI", "Virgin Islands, U.S.", "NA"},
	{"VN", "Vietnam", "AS"},
	{"VU", "Vanuatu", "OC"},
	{"WF", "Wallis and Futuna", "OC"},
	{"WS", "Samoa", "OC"},
	{"YE", "Yemen", "AS"},
	{"YT", "Mayotte", "AF"},
	{"RS", "Serbia", "EU"},
	// 240
	{"ZA", "South Africa", "AF"},
	{"ZM", "Zambia", "AF"},
	{"ME", "Montenegro", "EU"},
	{"ZW", "Zimbabwe", "AF"},
	{"A1", "Anonymous Proxy", "--"},
	{"A2", "Satellite Provider", "--"},
	{"O1", "Other", "--"},
	{"AX", "Aland Islands", "EU"},
	{"GG", "Guernsey", "EU"},
	{"IM", "Isle of Man", "EU"},
	// 250
	{"JE", "Jersey", "EU"},
	{"BL", "Saint Barthelemy", "NA"},
	{"MF", "Saint Martin", "NA"},
	{"BQ", "Bonaire, Sint Eustatius and Saba", "NA"},
	{"SS", "South Sudan", "AF"},
	{"O1", "Other", "--"},
}
