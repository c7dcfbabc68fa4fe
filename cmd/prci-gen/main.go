package main

import (
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"omibyte.io/prci/cmd/prci-gen/generator"
	"omibyte.io/prci/cmd/prci-gen/generator/sifive"
	"omibyte.io/prci/cmd/prci-gen/svd"
)

var (
	svdIn     string
	outputDir string
)

func init() {
	flag.StringVar(&svdIn, "in", "", "input SVD file")
	flag.StringVar(&outputDir, "out", ".", "output directory")
	flag.Parse()
}

func main() {
	// Open the input file
	file, err := os.Open(svdIn)
	if err != nil {
		log.Fatal("file io error: ", err)
	}

	// Read the SVD file into a buffer
	buf, err := io.ReadAll(file)
	if err != nil {
		log.Fatal("io error: ", err)
	}

	// Close the file
	if err = file.Close(); err != nil {
		log.Fatal("file io error: ", err)
	}

	// Decode the SVD XML
	var device svd.DeviceElement
	if err = xml.Unmarshal(buf, &device); err != nil {
		log.Fatal("xml decode error: ", err)
	}

	fmt.Println("Generating register packages for the following device:")
	fmt.Printf("Device:\t\t%s %s\n", device.Name, device.Version)
	fmt.Printf("CPU:\t\t%s\n", device.CPU.Name)
	fmt.Printf("Endian:\t\t%s\n", device.CPU.Endian)
	fmt.Printf("Architecture:\t%v-bit\n", device.BitWidth)
	fmt.Printf("Peripherals:\t%d\n", len(device.Peripherals.Elements))

	var gen generator.Generator
	// Choose the generator based on series
	switch device.Series {
	case "FU540", "FU740":
		gen = sifive.NewGenerator(device, svdIn)
	default:
		log.Fatalf("unsupported device series %q", device.Series)
	}

	// Create the output directory
	if err = os.MkdirAll(outputDir, 0750); err != nil {
		log.Fatal("file io error: ", err)
	}

	// Generate the implementation
	if err = gen.Generate(outputDir); err != nil {
		log.Fatal("generator error: ", err)
	}

	fmt.Println("Done.")
}
