package formcsv_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/nao1215/formcsv"
	"github.com/nao1215/formcsv/domain/model"
)

// newJohnDoe builds the sample record with a fixed creation date.
func newJohnDoe() *model.Record {
	clock := func() time.Time {
		return time.Date(2026, time.October, 14, 10, 4, 5, 0, time.UTC)
	}
	record := model.NewRecord(model.WithClock(clock))

	if err := record.SetName("John"); err != nil {
		log.Fatal(err)
	}
	if err := record.SetSurname("Doe"); err != nil {
		log.Fatal(err)
	}
	if err := record.SetBornDate(time.Date(2000, time.February, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		log.Fatal(err)
	}
	record.SetAddress(model.NewAddress("Via Garibaldi", "57", "milano", "20121"))
	if err := record.SetPhoneNumber("123456789"); err != nil {
		log.Fatal(err)
	}
	if err := record.SetEmail("john.doe@example.com"); err != nil {
		log.Fatal(err)
	}
	if err := record.SetGender('m'); err != nil {
		log.Fatal(err)
	}
	record.SetHobby("Play Football")
	record.SetWork("Writer")
	return record
}

// ExampleDocument_Save writes a record as header and data line and prints the file.
func ExampleDocument_Save() {
	tmpDir, err := os.MkdirTemp("", "formcsv_example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	record := newJohnDoe()
	path := filepath.Join(tmpDir, "Csv.txt")

	doc := formcsv.New(path, formcsv.DefaultSeparator)
	doc.SetHeader(record.AttributeNames())
	if err := doc.AddLine(record.DataValues()); err != nil {
		log.Fatal(err)
	}
	if err := doc.Save(); err != nil {
		log.Fatal(err)
	}

	data, err := os.ReadFile(path) //nolint:gosec // example file
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(data))

	// Output:
	// "data";"nome";"cognome";"dataDiNascita";"via";"numeroCivico";"citta";"nap";"telefono";"email";"genere";"hobby";"professione"
	// "Wed Oct 14 10:04:05 UTC 2026";"John";"Doe";"1/2/2000";"Via Garibaldi";"57";"milano";"20121";"123456789";"john.doe@example.com";"m";"Play Football";"Writer"
}

// ExampleJSONConverter_ConvertAll converts the lines of a saved document.
func ExampleJSONConverter_ConvertAll() {
	tmpDir, err := os.MkdirTemp("", "formcsv_example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "records.csv")
	doc := formcsv.New(path, formcsv.DefaultSeparator)
	doc.SetHeader([]string{"nome", "citta"})
	_ = doc.AddLine([]string{"John", "milano"})
	_ = doc.AddLine([]string{"broken"})
	if err := doc.Save(); err != nil {
		log.Fatal(err)
	}

	converter, err := formcsv.NewJSONConverter(path)
	if err != nil {
		log.Fatal(err)
	}
	for _, element := range converter.ConvertAll() {
		if element.Malformed() {
			fmt.Printf("line %d skipped\n", element.Line)
			continue
		}
		fmt.Println(element.JSON)
	}

	// Output:
	// {
	// "nome":"John";
	// "citta":"milano";
	// }
	// line 3 skipped
}
