package schema

// stateNames maps the 27 Brazilian federative unit codes (26 states plus the
// federal district) to their full names. Codes outside this table cannot be
// placed on a map and are excluded from state-keyed aggregations.
var stateNames = map[string]string{
	"AC": "Acre",
	"AL": "Alagoas",
	"AP": "Amapá",
	"AM": "Amazonas",
	"BA": "Bahia",
	"CE": "Ceará",
	"DF": "Distrito Federal",
	"ES": "Espírito Santo",
	"GO": "Goiás",
	"MA": "Maranhão",
	"MT": "Mato Grosso",
	"MS": "Mato Grosso do Sul",
	"MG": "Minas Gerais",
	"PA": "Pará",
	"PB": "Paraíba",
	"PR": "Paraná",
	"PE": "Pernambuco",
	"PI": "Piauí",
	"RJ": "Rio de Janeiro",
	"RN": "Rio Grande do Norte",
	"RS": "Rio Grande do Sul",
	"RO": "Rondônia",
	"RR": "Roraima",
	"SC": "Santa Catarina",
	"SP": "São Paulo",
	"SE": "Sergipe",
	"TO": "Tocantins",
}

// StateName resolves a two-letter state code to its full name.
func StateName(code string) (string, bool) {
	name, ok := stateNames[code]
	return name, ok
}

// StateCount is the number of entries in the state lookup table.
func StateCount() int {
	return len(stateNames)
}
