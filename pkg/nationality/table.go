package nationality

// Entry pairs an ISO 3166-1 alpha-2 country code with the human-readable
// nationality name derived from it.
type Entry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Nationalities is the fixed choice list, ordered by name. It is loaded once
// at program start and never mutated.
var Nationalities = []Entry{
	{"AF", "Afghan"},
	{"AL", "Albanian"},
	{"DZ", "Algerian"},
	{"US", "American"},
	{"AD", "Andorran"},
	{"AO", "Angolan"},
	{"AG", "Antiguan"},
	{"AR", "Argentine"},
	{"AM", "Armenian"},
	{"AU", "Australian"},
	{"AT", "Austrian"},
	{"AZ", "Azerbaijani"},
	{"BS", "Bahamian"},
	{"BH", "Bahraini"},
	{"BD", "Bangladeshi"},
	{"BB", "Barbadian"},
	{"BY", "Belarusian"},
	{"BE", "Belgian"},
	{"BZ", "Belizean"},
	{"BJ", "Beninese"},
	{"BT", "Bhutanese"},
	{"BO", "Bolivian"},
	{"BA", "Bosnian"},
	{"BW", "Botswanan"},
	{"BR", "Brazilian"},
	{"GB", "British"},
	{"BN", "Bruneian"},
	{"BG", "Bulgarian"},
	{"BF", "Burkinabe"},
	{"MM", "Burmese"},
	{"BI", "Burundian"},
	{"KH", "Cambodian"},
	{"CM", "Cameroonian"},
	{"CA", "Canadian"},
	{"CV", "Cape Verdean"},
	{"CF", "Central African"},
	{"TD", "Chadian"},
	{"CL", "Chilean"},
	{"CN", "Chinese"},
	{"CO", "Colombian"},
	{"KM", "Comoran"},
	{"CG", "Congolese"},
	{"CD", "Congolese (DRC)"},
	{"CR", "Costa Rican"},
	{"HR", "Croatian"},
	{"CU", "Cuban"},
	{"CY", "Cypriot"},
	{"CZ", "Czech"},
	{"DK", "Danish"},
	{"DJ", "Djiboutian"},
	{"DM", "Dominican"},
	{"DO", "Dominican (Republic)"},
	{"NL", "Dutch"},
	{"TL", "East Timorese"},
	{"EC", "Ecuadorean"},
	{"EG", "Egyptian"},
	{"AE", "Emirati"},
	{"GQ", "Equatorial Guinean"},
	{"ER", "Eritrean"},
	{"EE", "Estonian"},
	{"ET", "Ethiopian"},
	{"FJ", "Fijian"},
	{"PH", "Filipino"},
	{"FI", "Finnish"},
	{"FR", "French"},
	{"GA", "Gabonese"},
	{"GM", "Gambian"},
	{"GE", "Georgian"},
	{"DE", "German"},
	{"GH", "Ghanaian"},
	{"GR", "Greek"},
	{"GD", "Grenadian"},
	{"GT", "Guatemalan"},
	{"GN", "Guinean"},
	{"GW", "Guinea-Bissauan"},
	{"GY", "Guyanese"},
	{"HT", "Haitian"},
	{"HN", "Honduran"},
	{"HU", "Hungarian"},
	{"IS", "Icelandic"},
	{"IN", "Indian"},
	{"ID", "Indonesian"},
	{"IR", "Iranian"},
	{"IQ", "Iraqi"},
	{"IE", "Irish"},
	{"IL", "Israeli"},
	{"IT", "Italian"},
	{"CI", "Ivorian"},
	{"JM", "Jamaican"},
	{"JP", "Japanese"},
	{"JO", "Jordanian"},
	{"KZ", "Kazakhstani"},
	{"KE", "Kenyan"},
	{"KI", "Kiribati"},
	{"KW", "Kuwaiti"},
	{"KG", "Kyrgyz"},
	{"LA", "Laotian"},
	{"LV", "Latvian"},
	{"LB", "Lebanese"},
	{"LR", "Liberian"},
	{"LY", "Libyan"},
	{"LI", "Liechtensteiner"},
	{"LT", "Lithuanian"},
	{"LU", "Luxembourgish"},
	{"MK", "Macedonian"},
	{"MG", "Malagasy"},
	{"MW", "Malawian"},
	{"MY", "Malaysian"},
	{"MV", "Maldivian"},
	{"ML", "Malian"},
	{"MT", "Maltese"},
	{"MH", "Marshallese"},
	{"MR", "Mauritanian"},
	{"MU", "Mauritian"},
	{"MX", "Mexican"},
	{"FM", "Micronesian"},
	{"MD", "Moldovan"},
	{"MC", "Monacan"},
	{"MN", "Mongolian"},
	{"ME", "Montenegrin"},
	{"MA", "Moroccan"},
	{"LS", "Mosotho"},
	{"MZ", "Mozambican"},
	{"NA", "Namibian"},
	{"NR", "Nauruan"},
	{"NP", "Nepalese"},
	{"NZ", "New Zealander"},
	{"NI", "Nicaraguan"},
	{"NE", "Nigerien"},
	{"NG", "Nigerian"},
	{"KP", "North Korean"},
	{"NO", "Norwegian"},
	{"OM", "Omani"},
	{"PK", "Pakistani"},
	{"PW", "Palauan"},
	{"PS", "Palestinian"},
	{"PA", "Panamanian"},
	{"PG", "Papua New Guinean"},
	{"PY", "Paraguayan"},
	{"PE", "Peruvian"},
	{"PL", "Polish"},
	{"PT", "Portuguese"},
	{"QA", "Qatari"},
	{"RO", "Romanian"},
	{"RU", "Russian"},
	{"RW", "Rwandan"},
	{"KN", "Saint Kittian"},
	{"LC", "Saint Lucian"},
	{"VC", "Saint Vincentian"},
	{"SV", "Salvadoran"},
	{"WS", "Samoan"},
	{"SM", "Sammarinese"},
	{"ST", "Sao Tomean"},
	{"SA", "Saudi Arabian"},
	{"SN", "Senegalese"},
	{"RS", "Serbian"},
	{"SC", "Seychellois"},
	{"SL", "Sierra Leonean"},
	{"SG", "Singaporean"},
	{"SK", "Slovak"},
	{"SI", "Slovenian"},
	{"SB", "Solomon Islander"},
	{"SO", "Somali"},
	{"ZA", "South African"},
	{"KR", "South Korean"},
	{"SS", "South Sudanese"},
	{"ES", "Spanish"},
	{"LK", "Sri Lankan"},
	{"SD", "Sudanese"},
	{"SR", "Surinamese"},
	{"SZ", "Swazi"},
	{"SE", "Swedish"},
	{"CH", "Swiss"},
	{"SY", "Syrian"},
	{"TW", "Taiwanese"},
	{"TJ", "Tajik"},
	{"TZ", "Tanzanian"},
	{"TH", "Thai"},
	{"TG", "Togolese"},
	{"TO", "Tongan"},
	{"TT", "Trinidadian"},
	{"TN", "Tunisian"},
	{"TR", "Turkish"},
	{"TM", "Turkmen"},
	{"TV", "Tuvaluan"},
	{"UG", "Ugandan"},
	{"UA", "Ukrainian"},
	{"UY", "Uruguayan"},
	{"UZ", "Uzbek"},
	{"VU", "Vanuatuan"},
	{"VA", "Vatican"},
	{"VE", "Venezuelan"},
	{"VN", "Vietnamese"},
	{"YE", "Yemeni"},
	{"ZM", "Zambian"},
	{"ZW", "Zimbabwean"},
}

// NameFor resolves the display name for an ISO 3166-1 code with a linear
// scan over the table. First match wins. Unknown codes are not an error:
// the second return is false and the name is empty.
func NameFor(code string) (string, bool) {
	for _, e := range Nationalities {
		if e.Code == code {
			return e.Name, true
		}
	}
	return "", false
}

// Choices returns the full choice list for select/dropdown rendering. The
// returned slice is a copy so callers cannot mutate the table.
func Choices() []Entry {
	out := make([]Entry, len(Nationalities))
	copy(out, Nationalities)
	return out
}
