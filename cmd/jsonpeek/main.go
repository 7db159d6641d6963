// Command jsonpeek decodes a single JSON value and prints it, driving
// the decoder through a chunk-fed source to genuinely exercise source
// suspension rather than handing it the whole input at once.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/mcvoid/jsonstream"
	"github.com/mcvoid/jsonstream/dom"
	"github.com/mcvoid/jsonstream/events"
	"github.com/mcvoid/jsonstream/internal/engine"
	"github.com/mcvoid/jsonstream/sink"
	"github.com/mcvoid/jsonstream/source"
)

var version = "dev"

type options struct {
	File      string `short:"f" long:"file" description:"Read JSON from this file, rather than stdin" value-name:"path"`
	ChunkSize int    `short:"c" long:"chunk-size" description:"Feed the decoder this many bytes at a time" value-name:"n" default:"4096"`
	Events    bool   `long:"events" description:"Print the raw sink event trace instead of the decoded value"`
	Help      bool   `short:"h" long:"help" description:"Show this help"`
	Version   bool   `long:"version" description:"Show this version"`
}

func parseOptions(args []string) *options {
	var opts options
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[options]"
	_, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatal(err)
	}

	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}
	if opts.ChunkSize <= 0 {
		log.Fatal("chunk-size must be positive")
	}
	return &opts
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func main() {
	opts := parseOptions(os.Args[1:])

	data, err := readInput(opts.File)
	if err != nil {
		log.Fatal(err)
	}

	eng := engine.New()
	src := source.NewChunked()

	var domSink *dom.Sink
	var eventSink *events.Sink
	var snk sink.Sink
	if opts.Events {
		eventSink = events.New()
		snk = eventSink
	} else {
		domSink = dom.New(data)
		snk = domSink
	}

	offset := 0
	for {
		result := eng.Run(src, snk)
		switch result.Kind {
		case jsonstream.SourceSuspend:
			if offset >= len(data) {
				src.Close()
				continue
			}
			end := offset + opts.ChunkSize
			if end > len(data) {
				end = len(data)
			}
			src.Feed(data[offset:end])
			offset = end
			if offset >= len(data) {
				src.Close()
			}
		case jsonstream.SinkSuspend:
			// Neither concrete sink here ever suspends; Run replays the
			// same call on the next iteration regardless.
		case jsonstream.End:
			if opts.Events {
				for _, e := range eventSink.Events {
					fmt.Println(e)
				}
			} else {
				fmt.Println(domSink.Result())
			}
			return
		case jsonstream.ErrorResult:
			log.Fatalf("%s at byte %s", result.Err.Kind, result.Err.Pos)
		}
	}
}
