// sioframe encodes and decodes socket.io packet frames, one per line on
// stdin and stdout. It is a debugging aid for looking at raw frames.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/go-logr/stdr"
	jsoniter "github.com/json-iterator/go"
	cli "github.com/urfave/cli/v2"

	parser "github.com/googollee/go-socket.io-parser"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// packetJSON is the line format on stdin/stdout. A null id means no
// acknowledgement is requested.
type packetJSON struct {
	Type int         `json:"type"`
	Nsp  string      `json:"nsp,omitempty"`
	ID   *uint64     `json:"id,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

var app = cli.App{
	Name:  "sioframe",
	Usage: "encode and decode socket.io packet frames",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log verbosity"},
	},
	Before: func(ctx *cli.Context) error {
		stdr.SetVerbosity(ctx.Int("verbose"))
		return nil
	},
	Commands: []*cli.Command{
		{
			Name:   "decode",
			Usage:  "read one frame per line, print each decoded packet as JSON",
			Action: decodeAction,
		},
		{
			Name:   "encode",
			Usage:  "read one JSON packet per line, print each frame",
			Action: encodeAction,
		},
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func decodeAction(_ *cli.Context) error {
	decoder := parser.NewDecoder(nil)
	defer decoder.Destroy()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		decoded, err := decoder.Add(scanner.Text())
		if err != nil {
			return err
		}

		p := <-decoded

		out := packetJSON{Type: int(p.Type), Nsp: p.Namespace, Data: p.Data}
		if p.NeedAck {
			id := p.ID
			out.ID = &id
		}

		line, err := json.MarshalToString(out)
		if err != nil {
			return err
		}
		fmt.Println(line)
	}

	return scanner.Err()
}

func encodeAction(_ *cli.Context) error {
	encoder := parser.NewEncoder(nil)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		var in packetJSON
		if err := json.UnmarshalFromString(scanner.Text(), &in); err != nil {
			return err
		}

		p := parser.Packet{Type: parser.Type(in.Type), Namespace: in.Nsp, Data: in.Data}
		if in.ID != nil {
			p.ID = *in.ID
			p.NeedAck = true
		}

		frames := make(chan []string, 1)
		encoder.Encode(p, func(fs []string) { frames <- fs })

		for _, frame := range <-frames {
			fmt.Println(frame)
		}
	}

	return scanner.Err()
}
