package main

import (
	"fmt"

	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	strings_command = app.Command("strings",
		"Print the text of the string and message tables.").Default()
)

func doStrings() {
	mui_file := openMUIFile()

	text, err := mui_file.Strings()
	kingpin.FatalIfError(err, "Can not extract strings")

	fmt.Println(text)
}
