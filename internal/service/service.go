package service

// Validator checks a candidate entity before it is persisted.
type Validator interface {
	Validate(s any) error
}
