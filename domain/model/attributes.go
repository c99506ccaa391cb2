package model

// Request attribute names.
const (
	AttrName         = "name"
	AttrSurname      = "surname"
	AttrDay          = "day"
	AttrMonth        = "month"
	AttrYear         = "year"
	AttrStreet       = "street"
	AttrStreetNumber = "streetNumber"
	AttrCity         = "city"
	AttrNap          = "nap"
	AttrEmail        = "email"
	AttrNumber       = "number"
	AttrGender       = "gender"
	AttrHobby        = "hobby"
	AttrWork         = "work"
)

// setDataLength is the number of values accepted by Record.SetData.
const setDataLength = 14

// RequiredAttributes returns the names of the required request attributes.
func RequiredAttributes() []string {
	return []string{
		AttrName,
		AttrSurname,
		AttrDay,
		AttrMonth,
		AttrYear,
		AttrStreet,
		AttrStreetNumber,
		AttrCity,
		AttrNap,
		AttrEmail,
		AttrNumber,
		AttrGender,
	}
}

// OptionalAttributes returns the names of the optional request attributes.
func OptionalAttributes() []string {
	return []string{
		AttrHobby,
		AttrWork,
	}
}

// SetDataOrder returns the positional order expected by Record.SetData.
// It is RequiredAttributes followed by OptionalAttributes.
func SetDataOrder() []string {
	return append(RequiredAttributes(), OptionalAttributes()...)
}

// Column labels written in the CSV header, aligned with Record.DataValues.
const (
	ColumnDate         = "data"
	ColumnName         = "nome"
	ColumnSurname      = "cognome"
	ColumnBornDate     = "dataDiNascita"
	ColumnStreet       = "via"
	ColumnCivicNumber  = "numeroCivico"
	ColumnCity         = "citta"
	ColumnNap          = "nap"
	ColumnPhone        = "telefono"
	ColumnEmail        = "email"
	ColumnGender       = "genere"
	ColumnHobby        = "hobby"
	ColumnProfession   = "professione"
	recordColumnsCount = 13
)

// columnLabels returns the unquoted column labels.
func columnLabels() []string {
	return []string{
		ColumnDate,
		ColumnName,
		ColumnSurname,
		ColumnBornDate,
		ColumnStreet,
		ColumnCivicNumber,
		ColumnCity,
		ColumnNap,
		ColumnPhone,
		ColumnEmail,
		ColumnGender,
		ColumnHobby,
		ColumnProfession,
	}
}
