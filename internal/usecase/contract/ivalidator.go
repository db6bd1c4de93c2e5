package usecasecontract

// IValidator validates the inputs the wish endpoints accept.
type IValidator interface {
	ValidateDate(date string) error
	ValidateFID(fid uint64) error
}
