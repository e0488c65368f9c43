package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"jsonstore/src/directors"
	"jsonstore/src/engine"
	"jsonstore/src/helpers"
	"jsonstore/src/settings"
)

// printUsage prints helpful usage information
func printUsage() {
	log.Println("jsonstore - a single-file JSON document store")
	log.Println("\nUsage:")
	log.Println("  jsonstore [options] <command> [args]")
	log.Println("\nOptions:")
	flag.PrintDefaults()

	log.Println("\nCommands:")
	log.Println("  save <type> <json>        Save a document (include _id to update)")
	log.Println("  load <type> <id>          Print one document")
	log.Println("  delete <type> <id>        Delete one document")
	log.Println("  delete-all <type>         Delete every document of a type")
	log.Println("  drop-type <type>          Delete a type and its documents")
	log.Println("  docs <type>               List document ids for a type")
	log.Println("  types                     List types")

	log.Println("\nExamples:")
	log.Println(`  jsonstore --datafile=./datastore.db save person '{"name":"Craig","age":31}'`)
	log.Println("  jsonstore --datafile=./datastore.db types")
}

func main() {
	args := settings.GetSettings()

	flag.StringVar(&args.DataFile, "datafile", "./datastore.db", "Path to the backing data file")
	flag.BoolVar(&args.UseFileLock, "flock", false, "Hold a file lock for the duration of each operation")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&args.Debug, "debug", false, "Enable debug mode")
	flag.Usage = printUsage

	flag.Parse()

	logger, err := buildLogger(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if args.Verbose {
		sugar.Infow("jsonstore starting",
			"datafile", args.DataFile,
			"exists", helpers.FileExists(args.DataFile, sugar),
			"flock", args.UseFileLock,
			"version", args.Version)
	}

	var opts []engine.Option
	if args.UseFileLock {
		opts = append(opts, engine.WithFileLock())
	}

	store := engine.NewDocumentStore(args.DataFile, sugar, opts...)
	service := directors.NewDocumentService(store, sugar, args)

	if err := runCommand(service, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func buildLogger(args *settings.Arguments) (*zap.Logger, error) {
	if args.Debug {
		// Development configuration with more verbose output
		z := zap.NewDevelopmentConfig()
		z.OutputPaths = []string{"stderr"}
		return z.Build()
	}

	z := zap.NewProductionConfig()
	if !args.Verbose {
		z.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return z.Build()
}

func runCommand(service *directors.DocumentService, argv []string) error {
	if len(argv) == 0 {
		printUsage()
		return fmt.Errorf("no command given")
	}

	command, rest := argv[0], argv[1:]

	switch command {
	case "save":
		if len(rest) != 2 {
			return fmt.Errorf("usage: save <type> <json>")
		}
		data := make(engine.Document)
		if err := helpers.DecodeExtJSON([]byte(rest[1]), &data); err != nil {
			return fmt.Errorf("invalid document body: %w", err)
		}
		doc, err := service.SaveDocument(rest[0], data)
		if err != nil {
			return err
		}
		return printDocument(doc)

	case "load":
		if len(rest) != 2 {
			return fmt.Errorf("usage: load <type> <id>")
		}
		doc, err := service.GetDocument(rest[0], rest[1])
		if err != nil {
			return err
		}
		return printDocument(doc)

	case "delete":
		if len(rest) != 2 {
			return fmt.Errorf("usage: delete <type> <id>")
		}
		return service.RemoveDocument(rest[0], rest[1])

	case "delete-all":
		if len(rest) != 1 {
			return fmt.Errorf("usage: delete-all <type>")
		}
		return service.RemoveAllDocuments(rest[0])

	case "drop-type":
		if len(rest) != 1 {
			return fmt.Errorf("usage: drop-type <type>")
		}
		return service.RemoveType(rest[0])

	case "docs":
		if len(rest) != 1 {
			return fmt.Errorf("usage: docs <type>")
		}
		ids, err := service.ListDocumentIDs(rest[0])
		if err != nil {
			return err
		}
		printList(ids)
		return nil

	case "types":
		if len(rest) != 0 {
			return fmt.Errorf("usage: types")
		}
		types, err := service.ListDocumentTypes()
		if err != nil {
			return err
		}
		printList(types)
		return nil

	default:
		printUsage()
		return fmt.Errorf("unknown command '%s'", command)
	}
}

func printDocument(doc engine.Document) error {
	data, err := helpers.EncodeExtJSON(doc)
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printList(items []string) {
	sort.Strings(items)
	fmt.Println(strings.Join(items, "\n"))
}
