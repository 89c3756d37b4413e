package commands

// RegisterClient is a DTO for registering an individual client.
// BirthDate uses the dd-mm-yyyy form.
type RegisterClient struct {
	LegalID   string `validate:"required,numeric"`
	Name      string `validate:"required"`
	BirthDate string `validate:"required,datetime=02-01-2006"`
	Address   string
}
