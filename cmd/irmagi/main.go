// Command irmagi drives the IR capture/playback kit from the command
// line and hosts the web front end.
//
// Usage:
//
//	irmagi capture <name>    capture a signal and save it as a profile
//	irmagi play <name>       replay a stored profile
//	irmagi list              list stored profiles
//	irmagi show <name>       print a profile's JSON document
//	irmagi delete <name>     delete a stored profile
//	irmagi reset [mode]      reset the device
//	irmagi serve             run the web front end
//
// Settings come from the environment (or a .env file); see the config
// package for the IRMAGI_* keys.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/anekos/irmagi/config"
	"github.com/anekos/irmagi/driver"
	"github.com/anekos/irmagi/history"
	"github.com/anekos/irmagi/profile"
	"github.com/anekos/irmagi/web"
)

// stdLogger adapts the standard log package to the driver's Logger.
type stdLogger struct{}

func (l *stdLogger) Debug(msg string, kv ...interface{}) {}

func (l *stdLogger) Info(msg string, kv ...interface{}) {
	log.Println(append([]interface{}{msg}, kv...)...)
}

func (l *stdLogger) Error(msg string, kv ...interface{}) {
	log.Println(append([]interface{}{"ERROR:", msg}, kv...)...)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: irmagi <capture|play|list|show|delete|reset|serve> [args]")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg := config.Load()
	profiles := profile.NewStore(cfg.ProfileDir)

	var err error
	switch os.Args[1] {
	case "capture":
		err = runCapture(cfg, profiles, arg(2))
	case "play":
		err = runPlay(cfg, profiles, arg(2))
	case "list":
		err = runList(profiles)
	case "show":
		err = runShow(profiles, arg(2))
	case "delete":
		err = profiles.Remove(arg(2))
	case "reset":
		err = runReset(cfg)
	case "serve":
		err = runServe(cfg, profiles)
	default:
		usage()
	}

	if err != nil {
		// raw failure payloads help diagnose device/protocol drift
		fmt.Fprintln(os.Stderr, "irmagi:", err)
		os.Exit(1)
	}
}

func arg(i int) string {
	if len(os.Args) <= i {
		usage()
	}
	return os.Args[i]
}

func openSession(cfg *config.Config) (*driver.Session, error) {
	return driver.Open(cfg.Device,
		driver.WithLogger(&stdLogger{}),
		driver.WithReadTimeout(cfg.ReadTimeout),
		driver.WithRetryCooldown(cfg.RetryCooldown),
	)
}

func runCapture(cfg *config.Config, profiles *profile.Store, name string) error {
	sess, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	res, err := sess.Capture()
	if err != nil {
		return err
	}
	if !res.OK {
		return fmt.Errorf("capture failed: %s", res.Response)
	}

	waveform, err := sess.Dump()
	if err != nil {
		return err
	}

	location, err := profiles.Save(name, waveform)
	if err != nil {
		return err
	}
	fmt.Printf("captured %d bytes, saved to %s\n", res.Size, location)
	return nil
}

func runPlay(cfg *config.Config, profiles *profile.Store, name string) error {
	waveform, err := profiles.Load(name)
	if err != nil {
		return err
	}

	sess, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.Record(waveform); err != nil {
		return err
	}
	return sess.Play()
}

func runList(profiles *profile.Store) error {
	names, err := profiles.List()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runShow(profiles *profile.Store, name string) error {
	waveform, err := profiles.Load(name)
	if err != nil {
		return err
	}
	data, err := json.Marshal(waveform)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runReset(cfg *config.Config) error {
	mode := 0
	if len(os.Args) > 2 {
		m, err := strconv.Atoi(os.Args[2])
		if err != nil {
			return fmt.Errorf("invalid reset mode %q", os.Args[2])
		}
		mode = m
	}

	sess, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	return sess.Reset(mode)
}

func runServe(cfg *config.Config, profiles *profile.Store) error {
	sess, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	hist, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer hist.Close()

	server := web.NewServer(sess, profiles, hist)
	return server.Start(cfg.HTTPAddr)
}
