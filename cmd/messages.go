package main

import (
	"encoding/json"
	"fmt"

	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	messages_command = app.Command("messages",
		"Extracts messages from the message tables.")
)

func doMessages() {
	mui_file := openMUIFile()

	messages, err := mui_file.Messages()
	kingpin.FatalIfError(err, "Can not extract messages")

	serialized, _ := json.MarshalIndent(messages, "", "  ")
	fmt.Println(string(serialized))
}
