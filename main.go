package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/oblq/argonfc/internal/cputemp"
	"github.com/oblq/argonfc/internal/i2cfan"
	"github.com/oblq/argonfc/internal/statefile"
)

var opts struct {
	Config string `short:"c" long:"config" default:"/etc/argonfc.yaml" description:"configuration file path"`
}

type serviceCmd struct{}

// Execute runs the control loop until SIGINT or SIGTERM.
func (cmd *serviceCmd) Execute(_ []string) error {
	config, curve, rejected := LoadConfig(opts.Config)
	reportRejected(rejected)

	fan, err := i2cfan.Open(config.I2CBus, config.I2CAddr, config.FanReg)
	if err != nil {
		return fmt.Errorf("opening fan controller: %w", err)
	}
	defer fan.Close()

	controller := NewFanController(fan, statefile.New(config.StatePath), logRecorder{})
	loop := NewArgonFC(curve, newTempSource(config), controller,
		time.Duration(config.CheckInterval)*time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loop.Run(ctx)
	fmt.Println("exiting")

	return nil
}

type fanOnCmd struct{}

func (cmd *fanOnCmd) Execute(_ []string) error { return oneShot(100) }

type fanOffCmd struct{}

func (cmd *fanOffCmd) Execute(_ []string) error { return oneShot(0) }

type fanSpeedCmd struct {
	Args struct {
		Speed int `positional-arg-name:"speed" required:"yes" description:"duty cycle, 0-100"`
	} `positional-args:"yes"`
}

func (cmd *fanSpeedCmd) Execute(_ []string) error { return oneShot(cmd.Args.Speed) }

// oneShot opens the hardware, commands a single speed and exits.
// It goes through the same FanController as the service, so the
// persisted state stays coherent between the two.
func oneShot(speed int) error {
	config, _, _ := LoadConfig(opts.Config)

	fan, err := i2cfan.Open(config.I2CBus, config.I2CAddr, config.FanReg)
	if err != nil {
		return fmt.Errorf("opening fan controller: %w", err)
	}
	defer fan.Close()

	controller := NewFanController(fan, statefile.New(config.StatePath), logRecorder{})

	prior := controller.Speed()
	committed, err := controller.SetSpeed(speed)
	if err != nil {
		return err
	}
	if committed == prior {
		fmt.Printf("[argonfc] fan_speed=%d%% (unchanged)\n", committed)
	}

	return nil
}

type statusCmd struct{}

// Execute reports temperature, computed target and last committed
// speed without touching the hardware.
func (cmd *statusCmd) Execute(_ []string) error {
	config, curve, rejected := LoadConfig(opts.Config)
	reportRejected(rejected)

	fmt.Println(readStatus(newTempSource(config), curve, statefile.New(config.StatePath)))

	return nil
}

func newTempSource(config *Config) TempSource {
	if config.TempCmd != "" {
		return &cputemp.CommandSource{Cmd: config.TempCmd}
	}
	return &cputemp.FileSource{Path: config.TempFile}
}

func reportRejected(rejected []RejectedStep) {
	for _, r := range rejected {
		fmt.Fprintln(os.Stderr, "config:", r.String())
	}
}

func main() {
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)

	commands := []struct {
		name, short string
		data        interface{}
	}{
		{"service", "run the temperature-driven control loop", &serviceCmd{}},
		{"fanon", "set the fan to full speed", &fanOnCmd{}},
		{"fanoff", "stop the fan", &fanOffCmd{}},
		{"fanspeed", "set the fan to a given duty cycle", &fanSpeedCmd{}},
		{"status", "report temperature, target and last speed", &statusCmd{}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, "", c.data); err != nil {
			panic(err)
		}
	}

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				fmt.Println(err.Error())
				return
			}
			// unknown command, missing command or bad arguments
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
