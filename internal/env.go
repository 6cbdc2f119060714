package internal

// symbol is a variable occurrence, two symbols are the same variable when
// their names match
type symbol struct {
	name   string
	line   int
	column int
}

func symbolFromToken(tk *token) symbol {
	return symbol{
		name:   tk.lexeme,
		line:   tk.line,
		column: tk.column,
	}
}

// env is the single flat scope of a run. A nil value marks a variable
// declared without an initializer.
type env struct {
	values map[string]value
}

func newEnv() *env {
	return &env{
		values: make(map[string]value),
	}
}

func (e *env) get(name symbol) (value, error) {
	val, ok := e.values[name.name]
	if !ok {
		return nil, errUndefinedVar
	}
	if val == nil {
		return nil, errUninitializedVar
	}
	return val, nil
}

func (e *env) define(name string, val value) {
	e.values[name] = val
}

func (e *env) assign(name symbol, val value) error {
	if _, ok := e.values[name.name]; ok {
		e.values[name.name] = val
		return nil
	}
	return errUndefinedVar
}
