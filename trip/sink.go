package trip

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/kballard/go-shellquote"

	"github.com/HSellappan/railfocus/config"
	"github.com/HSellappan/railfocus/journey"
)

var errInvalidSoundFormat = errors.New(
	"sound file must be in mp3, ogg, flac, or wav format",
)

// alertSink translates journey events into desktop notifications, the
// arrival chime, and the post-journey command. It is purely reactive and
// never touches engine state.
type alertSink struct {
	opts *config.JourneyConfig
}

func newAlertSink(cfg *config.JourneyConfig) *alertSink {
	return &alertSink{opts: cfg}
}

func (s *alertSink) Handle(ev journey.Event) {
	switch ev := ev.(type) {
	case journey.MilestonePassedEvent:
		s.notify("Now passing " + ev.Milestone.Name)

	case journey.CompleteEvent:
		s.notify("You have arrived at " + s.opts.Destination)

		if err := s.playArrivalSound(); err != nil {
			slog.Error("unable to play arrival sound", slog.Any("error", err))
		}

		if err := s.runJourneyCmd(); err != nil {
			slog.Error("unable to run journey_cmd", slog.Any("error", err))
		}
	}
}

// notify sends a desktop notification in the background.
func (s *alertSink) notify(msg string) {
	if !s.opts.Notify {
		return
	}

	go func() {
		err := beeep.Notify("RailFocus", msg, "")
		if err != nil {
			slog.Error(
				"unable to display notification",
				slog.Any("error", err),
			)
		}
	}()
}

// prepSoundStream returns an audio stream for the specified sound file.
func prepSoundStream(sound string) (beep.StreamSeekCloser, error) {
	f, err := os.Open(sound)
	if err != nil {
		return nil, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	// the decoded stream owns f; closing the stream closes the file
	switch filepath.Ext(sound) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, errInvalidSoundFormat
	}

	if err != nil {
		_ = f.Close()
		return nil, err
	}

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		return nil, err
	}

	err = stream.Seek(0)
	if err != nil {
		return nil, err
	}

	return stream, nil
}

// playArrivalSound blocks until the configured chime finishes.
func (s *alertSink) playArrivalSound() error {
	if s.opts.ArrivalSound == "" {
		return nil
	}

	stream, err := prepSoundStream(s.opts.ArrivalSound)
	if err != nil {
		return err
	}

	done := make(chan bool)

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		done <- true
	})))

	<-done

	_ = stream.Close()

	speaker.Clear()
	speaker.Close()

	return nil
}

// runJourneyCmd executes the configured post-journey command.
func (s *alertSink) runJourneyCmd() error {
	if s.opts.JourneyCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(s.opts.JourneyCmd)
	if err != nil {
		return err
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	return cmd.Run()
}
