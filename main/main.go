package main

import (
	"flag"
	"fmt"
	goio "io"
	"log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/phil-mansfield/intersect/geom"
	"github.com/phil-mansfield/intersect/io"
	"github.com/phil-mansfield/intersect/plot"
)

func main() {
	var (
		intersect, exampleConfig string
		verbose                  bool
	)
	vars := map[string]*string{
		"Intersect":     &intersect,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&intersect, "Intersect", "",
		"Configuration file for [Intersect] mode, which gives the two lines "+
			"that will be intersected.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. The only accepted argument is "+
			"'Intersect'.",
	)
	flag.BoolVar(&verbose, "Verbose", false, "Print debugging information.")

	flag.Parse()

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Intersect":
		con, err := io.ReadIntersectConfig(intersect)
		if err != nil {
			log.Fatal(err.Error())
		}
		intersectMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Intersect":
			fmt.Println(io.ExampleIntersectFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'Intersect'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// intersectMain prints the intersection of the lines in con and plots them
// if requested.
func intersectMain(con *io.IntersectConfig) {
	l1, l2, err := con.Lines()
	if err != nil {
		log.Fatal(err.Error())
	}
	logrus.WithFields(logrus.Fields{
		"line1": l1, "line2": l2,
	}).Debug("read lines")

	res, err := geom.Intersect(l1, l2)
	if err != nil {
		log.Fatal(err.Error())
	}
	if err := writeResult(os.Stdout, res); err != nil {
		log.Fatal(err.Error())
	}

	if con.Plot != "" {
		// Intersect already normalized both lines successfully.
		c1, _ := geom.Normalize(l1)
		c2, _ := geom.Normalize(l2)
		plot.Lines(con.Plot, c1, c2, res)
		logrus.WithField("file", con.Plot).Debug("wrote plot")
	}
}

// writeResult writes res as "kind x y", e.g. "unique 34 172" or
// "parallel +Inf +Inf".
func writeResult(w goio.Writer, res geom.Result) error {
	x, y := res.Coords()
	_, err := fmt.Fprintf(w, "%s %g %g\n", res.Kind, x, y)
	return err
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but intersect "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}
