package model

// Address is the postal address of a Record. Values are stored as given.
type Address struct {
	street            string
	civicNumberLetter string
	city              string
	postalCode        string
}

// NewAddress creates a new Address.
func NewAddress(street, civicNumberLetter, city, postalCode string) Address {
	return Address{
		street:            street,
		civicNumberLetter: civicNumberLetter,
		city:              city,
		postalCode:        postalCode,
	}
}

// Street returns the street.
func (a Address) Street() string {
	return a.street
}

// SetStreet sets the street.
func (a *Address) SetStreet(street string) {
	a.street = street
}

// CivicNumberLetter returns the civic number, which may carry a letter suffix (e.g. "57b").
func (a Address) CivicNumberLetter() string {
	return a.civicNumberLetter
}

// SetCivicNumberLetter sets the civic number.
func (a *Address) SetCivicNumberLetter(civicNumberLetter string) {
	a.civicNumberLetter = civicNumberLetter
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// SetCity sets the city.
func (a *Address) SetCity(city string) {
	a.city = city
}

// PostalCode returns the postal code (NAP).
func (a Address) PostalCode() string {
	return a.postalCode
}

// SetPostalCode sets the postal code.
func (a *Address) SetPostalCode(postalCode string) {
	a.postalCode = postalCode
}
