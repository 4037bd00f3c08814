package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultCurve is the Argon ONE factory fan curve, used whenever the
// configuration provides no usable steps of its own.
var defaultCurve = []Step{
	{Temp: 45, DutyCycle: 20},
	{Temp: 50, DutyCycle: 35},
	{Temp: 55, DutyCycle: 55},
	{Temp: 60, DutyCycle: 75},
	{Temp: 65, DutyCycle: 100},
}

type Config struct {
	// CheckInterval is the time between temperature checks, in seconds.
	CheckInterval int `yaml:"check_interval"`

	// I2CBus is the periph.io bus name or number of the fan controller.
	I2CBus string `yaml:"i2c_bus"`

	// I2CAddr is the fan controller device address.
	I2CAddr uint16 `yaml:"i2c_addr"`

	// FanReg is the duty-cycle register on the device.
	FanReg byte `yaml:"fan_reg"`

	// StatePath is the runtime file mirroring the last committed speed.
	StatePath string `yaml:"state_path"`

	// TempFile is the sysfs thermal zone file, in millidegrees.
	TempFile string `yaml:"temp_file"`

	// TempCmd is a direct command returning a temperature in number
	// format, takes precedence over TempFile when set.
	TempCmd string `yaml:"temp_cmd"`

	// Curve is the temp/duty-cycle mapping, ascending by temperature.
	Curve []Step `yaml:"curve"`
}

func defaultConfig() *Config {
	return &Config{
		CheckInterval: 4,
		I2CBus:        "1",
		I2CAddr:       0x1a,
		FanReg:        0x80,
		StatePath:     "/run/argonfc.last_speed",
		TempFile:      "/sys/class/thermal/thermal_zone0/temp",
	}
}

// LoadConfig reads the yaml configuration at path. A missing file is
// not an error: the built-in defaults apply. A file that does not
// parse at all degrades the same way, with a printed warning, since
// the fan must keep spinning regardless of what happened to the
// config. Invalid curve steps are dropped one by one and returned in
// rejected; a curve with no valid steps falls back to defaultCurve.
func LoadConfig(path string) (config *Config, curve *Curve, rejected []RejectedStep) {
	config = defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Println("unable to read config file:", err.Error())
		}
	} else if err = yaml.Unmarshal(data, config); err != nil {
		fmt.Println("unable to parse config file:", err.Error())
		config = defaultConfig()
	}

	if config.CheckInterval <= 0 {
		config.CheckInterval = 4
	}

	steps := config.Curve
	if len(steps) == 0 {
		steps = defaultCurve
	}

	curve, rejected = NewCurve(steps)
	if curve.Len() == 0 {
		curve, _ = NewCurve(defaultCurve)
	}

	return config, curve, rejected
}
