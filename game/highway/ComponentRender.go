package highway

type Render struct {
	type_  string
	static bool
}

func (r Render) GetType() string {
	return r.type_
}

func (r Render) IsStatic() bool {
	return r.static
}
