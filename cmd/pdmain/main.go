// Command pdmain generates the registration glue that binds a game type to
// the OS entry point. Run it from a go:generate directive in the package that
// declares the game:
//
//	//go:generate go run pdkit/cmd/pdmain -type MyGame
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

func main() {
	var typeName, dir, output string
	flag.StringVar(&typeName, "type", "", "game struct type to register (required)")
	flag.StringVar(&dir, "dir", ".", "directory of the package declaring the type")
	flag.StringVar(&output, "output", "zz_pdmain.go", "output file, relative to -dir")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("pdmain: ")

	if typeName == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(typeName, dir, output); err != nil {
		log.Fatal(err)
	}
}

func run(typeName, dir, output string) error {
	pkg, err := load(dir)
	if err != nil {
		return err
	}
	if err := check(pkg.Types, typeName); err != nil {
		return err
	}
	src, err := render(target{Package: pkg.Name, Type: typeName})
	if err != nil {
		return err
	}
	path := filepath.Join(dir, output)
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
