// Package main implements a tool for editing a Roland JD-Xi.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/markxbrooks/jdxictl/jdxi"
	"github.com/markxbrooks/jdxictl/jdxi/address"
	"github.com/markxbrooks/jdxictl/jdxi/param"
	"github.com/markxbrooks/jdxictl/jdxi/program"
	"github.com/markxbrooks/jdxictl/jdxi/sysex"
	"github.com/rakyll/portmidi"
	"gitlab.com/gomidi/midi/v2"
)

var (
	midiDevice   = flag.String("midi_device", "", "Name of MIDI device")
	jdxiDeviceID = flag.Int("device_id", int(sysex.DefaultDevice), "SysEx ID of JD-Xi device to control")
	midiChannel  = flag.Int("channel", 1, "MIDI channel for program and note messages (1-16)")
)

func device() *jdxi.Device {
	return jdxi.New(sysex.DeviceID(*jdxiDeviceID))
}

func channel() uint8 {
	ch := *midiChannel
	if ch < 1 || ch > 16 {
		ch = 1
	}
	return uint8(ch - 1)
}

// portForName returns the ID of the port with the given name.
func portForName(name string, input bool) (portmidi.DeviceID, error) {
	portNames := []string{}
	for i := 0; i < portmidi.CountDevices(); i++ {
		id := portmidi.DeviceID(i)
		info := portmidi.Info(id)
		if input && !info.IsInputAvailable || !input && !info.IsOutputAvailable {
			continue
		}
		if info.Name == name {
			return id, nil
		}
		portNames = append(portNames, fmt.Sprintf("%q", info.Name))
	}
	return portmidi.DeviceID(-1), fmt.Errorf("invalid port %q: valid ports: %v", name, strings.Join(portNames, "; "))
}

func openOutput() (*portmidi.Stream, error) {
	if err := portmidi.Initialize(); err != nil {
		return nil, err
	}
	id := portmidi.DefaultOutputDeviceID()
	if *midiDevice != "" {
		var err error
		id, err = portForName(*midiDevice, false)
		if err != nil {
			return nil, err
		}
	}
	return portmidi.NewOutputStream(id, 1024, 0)
}

func openInput() (*portmidi.Stream, error) {
	if err := portmidi.Initialize(); err != nil {
		return nil, err
	}
	id := portmidi.DefaultInputDeviceID()
	if *midiDevice != "" {
		var err error
		id, err = portForName(*midiDevice, true)
		if err != nil {
			return nil, err
		}
	}
	return portmidi.NewInputStream(id, 1024)
}

func writeChannelMessage(out *portmidi.Stream, msg midi.Message) error {
	b := msg.Bytes()
	var d1, d2 int64
	if len(b) > 1 {
		d1 = int64(b[1])
	}
	if len(b) > 2 {
		d2 = int64(b[2])
	}
	return out.WriteShort(int64(b[0]), d1, d2)
}

// parsePartial reads a partial argument: "common", a number, or a drum
// voice name such as BD1.
func parsePartial(synth address.SynthType, arg string) (int, error) {
	if strings.EqualFold(arg, "common") {
		return address.CommonPartial, nil
	}
	if n, err := strconv.Atoi(arg); err == nil {
		return n, nil
	}
	if synth == address.Drums {
		return address.DrumPartialIndex(arg)
	}
	return 0, fmt.Errorf("bad partial %q", arg)
}

// parseValue reads a display value, accepting an enum label where the
// parameter has options.
func parseValue(spec *param.Spec, arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		return n, nil
	}
	if spec.Encoding != param.Enum {
		return 0, fmt.Errorf("bad value %q for %s", arg, spec.Name)
	}
	raw, err := spec.RawForLabel(strings.ToUpper(arg))
	if err != nil {
		return 0, err
	}
	return spec.ToDisplay(raw)
}

type cmd struct {
	name, synopsis string
	minArgs        int
	produceData    func([]string) ([]byte, error)
}

func (c *cmd) Name() string           { return c.name }
func (c *cmd) Synopsis() string       { return c.synopsis }
func (*cmd) SetFlags(f *flag.FlagSet) {}
func (c *cmd) Usage() string {
	return fmt.Sprintf("%s [...]:\n%s\n", c.Name(), c.Synopsis())
}

func (c *cmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(f.Args()) < c.minArgs {
		log.Printf("parameter not provided for command %q", c.name)
		return subcommands.ExitFailure
	}
	msg, err := c.produceData(f.Args())
	if err != nil {
		log.Printf("rejected: %v", err)
		return subcommands.ExitFailure
	}
	out, err := openOutput()
	if err != nil {
		log.Printf("failed to open portmidi: %v", err)
		return subcommands.ExitFailure
	}
	if err := out.WriteSysExBytes(portmidi.Time(), msg); err != nil {
		log.Printf("failed to write message to output: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func setParam(args []string) ([]byte, error) {
	synth, err := address.ParseSynth(args[0])
	if err != nil {
		return nil, err
	}
	partial, err := parsePartial(synth, args[1])
	if err != nil {
		return nil, err
	}
	spec, err := param.Lookup(synth, partial, args[2])
	if err != nil {
		return nil, err
	}
	value, err := parseValue(spec, args[3])
	if err != nil {
		return nil, err
	}
	return device().ApplyEdit(jdxi.ParameterEdit{
		Synth: synth, Partial: partial, Param: args[2], Value: value,
	})
}

func requestParam(args []string) ([]byte, error) {
	synth, err := address.ParseSynth(args[0])
	if err != nil {
		return nil, err
	}
	partial, err := parsePartial(synth, args[1])
	if err != nil {
		return nil, err
	}
	return device().RequestValue(synth, partial, args[2])
}

func requestSection(args []string) ([]byte, error) {
	synth, err := address.ParseSynth(args[0])
	if err != nil {
		return nil, err
	}
	partial, err := parsePartial(synth, args[1])
	if err != nil {
		return nil, err
	}
	return device().RequestSection(synth, partial)
}

var sysexCommands = []subcommands.Command{
	&cmd{
		name:        "set-param",
		synopsis:    "Set a parameter: set-param <synth> <partial> <param> <value>",
		minArgs:     4,
		produceData: setParam,
	},
	&cmd{
		name:        "request-param",
		synopsis:    "Request a parameter value: request-param <synth> <partial> <param>",
		minArgs:     3,
		produceData: requestParam,
	},
	&cmd{
		name:        "request-section",
		synopsis:    "Request a whole section block: request-section <synth> <partial>",
		minArgs:     2,
		produceData: requestSection,
	},
	&cmd{
		name:     "detect",
		synopsis: "Send an identity request to detect a JD-Xi",
		produceData: func([]string) ([]byte, error) {
			return sysex.IdentityRequest(sysex.DeviceID(*jdxiDeviceID)), nil
		},
	},
}

type selectProgramCmd struct{}

func (*selectProgramCmd) Name() string           { return "select-program" }
func (*selectProgramCmd) Synopsis() string       { return "Select a program by bank and slot, e.g. A01" }
func (*selectProgramCmd) SetFlags(*flag.FlagSet) {}
func (c *selectProgramCmd) Usage() string {
	return "select-program <bank><slot>:\n" + c.Synopsis() + "\n"
}

func (c *selectProgramCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(f.Args()) < 1 {
		log.Printf("program not provided, e.g. A01")
		return subcommands.ExitFailure
	}
	id, err := program.ParseIdentity(f.Arg(0))
	if err != nil {
		log.Printf("rejected: %v", err)
		return subcommands.ExitFailure
	}
	msgs, err := id.SelectMessages(channel())
	if err != nil {
		log.Printf("rejected: %v", err)
		return subcommands.ExitFailure
	}
	out, err := openOutput()
	if err != nil {
		log.Printf("failed to open portmidi: %v", err)
		return subcommands.ExitFailure
	}
	// Bank select must land before the program change, in order.
	for _, msg := range msgs {
		if err := writeChannelMessage(out, msg); err != nil {
			log.Printf("failed to write message to output: %v", err)
			return subcommands.ExitFailure
		}
	}
	if rec, ok := program.LookupRecord(id); ok {
		fmt.Printf("%s: %s (%s)\n", id, rec.Name, rec.Genre)
	}
	return subcommands.ExitSuccess
}

type noteCmd struct {
	velocity int
	duration time.Duration
}

func (*noteCmd) Name() string     { return "note" }
func (*noteCmd) Synopsis() string { return "Play a note for auditioning the current patch" }
func (c *noteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.velocity, "velocity", 100, "Note velocity (1-127)")
	f.DurationVar(&c.duration, "duration", 500*time.Millisecond, "How long to hold the note")
}
func (c *noteCmd) Usage() string {
	return "note <key 0-127>:\n" + c.Synopsis() + "\n"
}

func (c *noteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(f.Args()) < 1 {
		log.Printf("note number not provided")
		return subcommands.ExitFailure
	}
	key, err := strconv.Atoi(f.Arg(0))
	if err != nil || key < 0 || key > 127 {
		log.Printf("bad note number %q", f.Arg(0))
		return subcommands.ExitFailure
	}
	out, err := openOutput()
	if err != nil {
		log.Printf("failed to open portmidi: %v", err)
		return subcommands.ExitFailure
	}
	if err := writeChannelMessage(out, midi.NoteOn(channel(), uint8(key), uint8(c.velocity))); err != nil {
		log.Printf("failed to write note on: %v", err)
		return subcommands.ExitFailure
	}
	time.Sleep(c.duration)
	if err := writeChannelMessage(out, midi.NoteOff(channel(), uint8(key))); err != nil {
		log.Printf("failed to write note off: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type decodeCmd struct{}

func (*decodeCmd) Name() string           { return "decode" }
func (*decodeCmd) Synopsis() string       { return "Decode a hex-dumped SysEx frame" }
func (*decodeCmd) SetFlags(*flag.FlagSet) {}
func (c *decodeCmd) Usage() string {
	return "decode <hex bytes, e.g. F0 41 10 ...>:\n" + c.Synopsis() + "\n"
}

func (c *decodeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	raw := strings.ReplaceAll(strings.Join(f.Args(), ""), " ", "")
	frame, err := hex.DecodeString(raw)
	if err != nil {
		log.Printf("bad hex input: %v", err)
		return subcommands.ExitFailure
	}
	d := device()
	edit, err := d.DecodeEdit(frame)
	if err != nil {
		log.Printf("undecodable frame: %v", err)
		return subcommands.ExitFailure
	}
	fmt.Println(d.FormatEdit(*edit))
	return subcommands.ExitSuccess
}

type listenCmd struct{}

func (*listenCmd) Name() string           { return "listen" }
func (*listenCmd) Synopsis() string       { return "Print parameter changes reported by the device" }
func (*listenCmd) SetFlags(*flag.FlagSet) {}
func (c *listenCmd) Usage() string {
	return "listen:\n" + c.Synopsis() + "\n"
}

func (c *listenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := openInput()
	if err != nil {
		log.Printf("failed to open portmidi: %v", err)
		return subcommands.ExitFailure
	}
	d := device()
	// Malformed frames are logged and dropped; the stream keeps going.
	for event := range in.Listen() {
		if len(event.SysEx) == 0 {
			continue
		}
		edit, err := d.DecodeEdit(event.SysEx)
		if err != nil {
			log.Printf("discarding frame: %v", err)
			continue
		}
		fmt.Println(d.FormatEdit(*edit))
	}
	return subcommands.ExitSuccess
}

type listPortsCmd struct{}

func (*listPortsCmd) Name() string           { return "list-ports" }
func (*listPortsCmd) Synopsis() string       { return "List available MIDI ports" }
func (*listPortsCmd) SetFlags(*flag.FlagSet) {}
func (c *listPortsCmd) Usage() string {
	return "list-ports:\n" + c.Synopsis() + "\n"
}

func (c *listPortsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := portmidi.Initialize(); err != nil {
		log.Printf("failed to initialize portmidi: %v", err)
		return subcommands.ExitFailure
	}
	for i := 0; i < portmidi.CountDevices(); i++ {
		info := portmidi.Info(portmidi.DeviceID(i))
		dir := "out"
		if info.IsInputAvailable {
			dir = "in"
		}
		fmt.Printf("%d\t%s\t%s\n", i, dir, info.Name)
	}
	return subcommands.ExitSuccess
}

func main() {
	flag.Parse()
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	for _, cmd := range sysexCommands {
		subcommands.Register(cmd, "")
	}
	subcommands.Register(&selectProgramCmd{}, "")
	subcommands.Register(&noteCmd{}, "")
	subcommands.Register(&decodeCmd{}, "")
	subcommands.Register(&listenCmd{}, "")
	subcommands.Register(&listPortsCmd{}, "")
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
