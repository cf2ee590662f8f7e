package cmd

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/google/gops/agent"
	"github.com/pkg/errors"
	"github.com/pyroscope-io/client/pyroscope"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"sortdemo/src/utils"
)

var logger = utils.GetLogger("sortdemo")

const version = "0.1.0"

// Main builds the application and runs it with args (os.Args layout).
func Main(args []string) error {
	return NewApp().Run(args)
}

func NewApp() *cli.App {
	return &cli.App{
		Name:                 "sortdemo",
		Usage:                "A generic in-memory sorter with bubble and insertion sort",
		Version:              version,
		Copyright:            "MIT License",
		EnableBashCompletion: true,
		Flags:                globalFlags(),
		Commands: []*cli.Command{
			CmdDemo(),
			CmdSort(),
			CmdGenerate(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"debug"},
			Usage:   "enable debug log",
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "enable trace log",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "show warning and errors only",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colors",
		},
		&cli.BoolFlag{
			Name:  "agent",
			Usage: "start pprof and gops agents on 127.0.0.1 for debugging",
		},
		&cli.StringFlag{
			Name:    "pyroscope",
			Usage:   "pyroscope address",
			EnvVars: []string{"SORTDEMO_PYROSCOPE"},
		},
	}
}

func setup(c *cli.Context, n int) error {
	if c.NArg() < n {
		fmt.Printf("ERROR: This command requires at least %d arguments\n", n)
		fmt.Printf("USAGE:\n   sortdemo %s [command options] %s\n", c.Command.Name, c.Command.ArgsUsage)
		return errors.Errorf("%s: expected at least %d arguments, got %d", c.Command.Name, n, c.NArg())
	}

	if c.Bool("trace") {
		utils.SetLogLevel(logrus.TraceLevel)
	} else if c.Bool("verbose") {
		utils.SetLogLevel(logrus.DebugLevel)
	} else if c.Bool("quiet") {
		utils.SetLogLevel(logrus.WarnLevel)
	} else {
		utils.SetLogLevel(logrus.InfoLevel)
	}
	if c.Bool("no-color") {
		utils.DisableLogColor()
		color.NoColor = true
	}

	if c.Bool("agent") {
		go func() {
			for port := 6060; port < 6100; port++ {
				_ = http.ListenAndServe(fmt.Sprintf("127.0.0.1:%d", port), nil)
			}
		}()
		go func() {
			for port := 6070; port < 6100; port++ {
				if err := agent.Listen(agent.Options{Addr: fmt.Sprintf("127.0.0.1:%d", port)}); err == nil {
					logger.Debugf("gops agent listening on 127.0.0.1:%d", port)
					return
				}
			}
		}()
	}

	if c.IsSet("pyroscope") {
		tags := make(map[string]string)
		appName := fmt.Sprintf("sortdemo.%s", c.Command.Name)
		if hostname, err := os.Hostname(); err == nil {
			tags["hostname"] = hostname
		}
		tags["pid"] = strconv.Itoa(os.Getpid())
		tags["version"] = version

		if _, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: appName,
			ServerAddress:   c.String("pyroscope"),
			Logger:          logger,
			Tags:            tags,
			AuthToken:       os.Getenv("PYROSCOPE_AUTH_TOKEN"),
			ProfileTypes:    pyroscope.DefaultProfileTypes,
		}); err != nil {
			logger.Errorf("start pyroscope agent: %v", err)
		}
	}
	return nil
}
