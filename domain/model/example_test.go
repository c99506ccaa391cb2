package model_test

import (
	"fmt"
	"log"

	"github.com/nao1215/formcsv/domain/model"
)

// ExampleRecord_SetData fills a record from positional form values.
func ExampleRecord_SetData() {
	record := model.NewRecord()
	err := record.SetData([]string{
		"John", "Doe", "1", "2", "2000",
		"Via Garibaldi", "57", "milano", "20121",
		"john.doe@example.com", "123456789", "m",
		"Play Football", "Writer",
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(record.Name(), record.Surname(), record.Address().City())

	err = record.SetData([]string{"too", "short"})
	fmt.Println(err)

	// Output:
	// John Doe milano
	// The inserted data is not valid.
}
