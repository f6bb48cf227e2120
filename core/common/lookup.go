package common

/*Lookup - a code, value pair. The code is used in the program and the value is a user friendly label */
type Lookup struct {
	Code  string `json:"code" msgpack:"code" yaml:"code"`
	Value string `json:"value" msgpack:"value" yaml:"value"`
}

/*GetCode - get the code */
func (l *Lookup) GetCode() string {
	return l.Code
}

/*GetValue - get the value */
func (l *Lookup) GetValue() string {
	return l.Value
}

func (l *Lookup) String() string {
	return l.Value
}

/*CreateLookups - given code,value args, return an array of lookups */
func CreateLookups(arg ...string) []*Lookup {
	lookups := make([]*Lookup, 0, len(arg)/2)
	for i := 0; i+1 < len(arg); i += 2 {
		lookups = append(lookups, &Lookup{Code: arg[i], Value: arg[i+1]})
	}
	return lookups
}

/*LookupByCode - index lookups by their code */
func LookupByCode(lookups []*Lookup) map[string]*Lookup {
	index := make(map[string]*Lookup, len(lookups))
	for _, l := range lookups {
		index[l.Code] = l
	}
	return index
}
