package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"time"

	"github.com/jangler/tuners/play"
)

var settingsPath = "config/settings.csv"

type settings struct {
	Backend           string // sdl or midi
	BaseFrequency     float64
	Amplitude         float64
	NoteMillis        int
	SampleRate        int
	MidiOutPortNumber int
	MidiProgram       int
}

// return settings matching play.DefaultParams
func defaultSettings() *settings {
	return &settings{
		Backend:       "sdl",
		BaseFrequency: play.DefaultParams.Base,
		Amplitude:     play.DefaultParams.Amplitude,
		NoteMillis:    int(play.DefaultParams.Duration / time.Millisecond),
		SampleRate:    play.DefaultSampleRate,
	}
}

// load settings from a config file on top of the defaults. a missing file is
// not an error.
func loadSettings(path string, warn func(string)) *settings {
	s := defaultSettings()
	if records, err := readCSV(path); err == nil {
		s.applyRecords(records, warn)
	} else if !errors.Is(err, fs.ErrNotExist) {
		warn(err.Error())
	}
	return s
}

// apply CSV records
func (s *settings) applyRecords(records [][]string, warn func(string)) {
	v := reflect.ValueOf(s).Elem()
	for _, rec := range records {
		success := false
		if len(rec) == 2 {
			if field := v.FieldByName(rec[0]); field.IsValid() {
				switch field.Kind() {
				case reflect.Float64:
					if f, err := strconv.ParseFloat(rec[1], 64); err == nil {
						field.SetFloat(f)
						success = true
					}
				case reflect.Int:
					if i, err := strconv.Atoi(rec[1]); err == nil {
						field.SetInt(int64(i))
						success = true
					}
				case reflect.String:
					field.SetString(rec[1])
					success = true
				}
			}
		}
		if !success {
			warn(fmt.Sprintf("bad settings record: %v", rec))
		}
	}
}

// return the playback parameters described by the settings
func (s *settings) params() play.Params {
	return play.Params{
		Base:      s.BaseFrequency,
		Duration:  time.Duration(s.NoteMillis) * time.Millisecond,
		Amplitude: s.Amplitude,
	}
}

// read records from a CSV file
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.Comment = '#'
	r.FieldsPerRecord = -1
	return r.ReadAll()
}
