package main

import (
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2"
	"www.velocidex.com/golang/binparsergen/reader"
	mui "www.velocidex.com/golang/go-mui"
)

var (
	app = kingpin.New("go-mui",
		"Get strings from the resource section of MUI files.")

	file_flag = app.Flag("file", "The target file").Short('f').
			Required().OpenFile(os.O_RDONLY, 0600)

	debug_flag = app.Flag("debug", "Trace the resource tree walk").Bool()
)

func openMUIFile() *mui.MUIFile {
	fd := *file_flag
	stat, err := fd.Stat()
	kingpin.FatalIfError(err, "Can not stat file %s", fd.Name())

	paged_reader, err := reader.NewPagedReader(fd, 4096, 100)
	kingpin.FatalIfError(err, "Can not open file %s", fd.Name())

	mui_file, err := mui.NewMUIFileFromReader(paged_reader, stat.Size())
	kingpin.FatalIfError(err, "Can not parse file %s", fd.Name())

	if *debug_flag {
		tree, err := mui_file.ResourceTree()
		kingpin.FatalIfError(err, "Can not walk resource tree")
		mui.Debug(tree)
	}

	return mui_file
}

func main() {
	app.HelpFlag.Short('h')
	app.UsageTemplate(kingpin.CompactUsageTemplate)
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug_flag {
		mui.SetDebug(true)
	}

	switch command {
	case strings_command.FullCommand():
		doStrings()

	case messages_command.FullCommand():
		doMessages()

	case info_command.FullCommand():
		doInfo()
	}
}
