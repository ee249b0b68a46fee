package main

import (
	"encoding/json"
	"fmt"

	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	info_command = app.Command("info",
		"Displays the resource tree of the file.")
)

func doInfo() {
	mui_file := openMUIFile()

	summary, err := mui_file.Summary()
	kingpin.FatalIfError(err, "Can not walk resource tree")

	serialized, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Println(string(serialized))
}
