package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/tesselslate/xwin/event"
	"github.com/tesselslate/xwin/geom"
	"github.com/tesselslate/xwin/internal/cfg"
	"github.com/tesselslate/xwin/internal/log"
	"github.com/tesselslate/xwin/internal/res"
	"github.com/tesselslate/xwin/key"
	"github.com/tesselslate/xwin/window"
)

// errQuit is returned by a session handler to stop the event loop.
var errQuit = errors.New("quit")

// eventWindow is the part of a window.Window used by a session.
type eventWindow interface {
	WaitEvent() (event.Event, error)
	Mods() key.Mods
	Title() string
	SetTitle(title string) error
	Close()
}

// received is an event along with the modifier keys held when it was read.
type received struct {
	evt  event.Event
	mods key.Mods
}

// session runs the event loop of a window opened from a profile.
type session struct {
	profile cfg.Profile
	win     eventWindow
	watcher *cfg.Watcher
	closed  sync.Once

	// handle is called with every event received from the window and the
	// modifier keys held at that moment.
	handle func(evt event.Event, mods key.Mods) error

	// retitle is called after the window title changes.
	retitle func(title string)

	// Whether the title shows window details instead of the profile title.
	detailed bool
	size     geom.Size
	state    event.WindowState
}

// loadProfile returns the named profile, or the built-in default profile if
// name is empty.
func loadProfile(name string) (cfg.Profile, error) {
	if name == "" {
		return cfg.ParseProfile(res.DefaultTOML, ".toml")
	}
	profile, err := cfg.GetProfile(name)
	if err != nil {
		return cfg.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// openSession opens a window for the profile and starts watching the
// profile file, if there is one.
func openSession(profile cfg.Profile) (*session, error) {
	win, err := window.NewDisplay(
		viper.GetString("display"),
		profile.Window.Width,
		profile.Window.Height,
		profile.Window.Title,
	)
	if err != nil {
		return nil, fmt.Errorf("open window: %w", err)
	}
	s := &session{
		profile: profile,
		win:     win,
		handle:  func(event.Event, key.Mods) error { return nil },
		retitle: func(string) {},
		size:    geom.Size{W: int32(profile.Window.Width), H: int32(profile.Window.Height)},
	}
	if path := profile.Path(); path != "" {
		s.watcher = cfg.NewWatcher(path)
		if err := s.watcher.Watch(); err != nil {
			log.Warn("Failed to watch profile (%s): %s", path, err)
			s.watcher = nil
		}
	}
	log.Info("Opened window %d on screen %d", win.ID(), win.DefaultScreen())
	return s, nil
}

// close stops the profile watcher and closes the window. It may be called
// more than once.
func (s *session) close() {
	s.closed.Do(func() {
		if s.watcher != nil {
			s.watcher.Stop()
		}
		s.win.Close()
	})
}

// run processes events until the window is closed, the quit bind is
// pressed, the process is interrupted or the connection fails.
func (s *session) run() error {
	events := make(chan received, 64)
	errs := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			evt, err := s.win.WaitEvent()
			if err != nil {
				errs <- err
				return
			}
			// The modifier state moves on as later events are read.
			next := received{evt, s.win.Mods()}
			select {
			case events <- next:
			case <-done:
				return
			}
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	var updates <-chan fsnotify.Event
	var watchErrs <-chan cfg.WatchError
	if s.watcher != nil {
		updates = s.watcher.Updates
		watchErrs = s.watcher.Errors
	}

	for {
		select {
		case next := <-events:
			err := s.dispatch(next.evt, next.mods)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				return err
			}
		case err := <-errs:
			if errors.Is(err, window.ErrConnectionDied) {
				log.Info("X connection closed.")
				return nil
			}
			return err
		case <-updates:
			s.reload()
		case err := <-watchErrs:
			log.Warn("Profile watcher error: %s", err.Err)
			if err.Fatal {
				watchErrs, updates = nil, nil
			}
		case sig := <-sigs:
			log.Info("Received %s, shutting down.", sig)
			return nil
		}
	}
}

// dispatch handles one event, running any action bound to it. mods holds the
// modifier keys held when the event was read.
func (s *session) dispatch(evt event.Event, mods key.Mods) error {
	if err := s.handle(evt, mods); err != nil {
		return err
	}
	switch evt := evt.(type) {
	case event.Close:
		log.Info("Window manager requested close.")
		return errQuit
	case event.Resize:
		s.size = evt.Size
		s.refreshTitle()
	case event.StateChange:
		s.state = evt.State
		s.refreshTitle()
	case event.KeyPress:
		action, ok := s.profile.Binds.Lookup(evt.Sym, mods)
		if !ok {
			return nil
		}
		log.Debug("Running action %q", action)
		switch action {
		case cfg.ActionQuit:
			return errQuit
		case cfg.ActionReload:
			s.reload()
		case cfg.ActionTitle:
			s.detailed = !s.detailed
			s.refreshTitle()
		}
	}
	return nil
}

// reload reads the profile again and applies its title and binds. The window
// size is only read on startup.
func (s *session) reload() {
	path := s.profile.Path()
	if path == "" {
		return
	}
	profile, err := cfg.LoadProfile(path)
	if err != nil {
		log.Warn("Failed to reload profile: %s", err)
		return
	}
	s.profile = profile
	log.Info("Reloaded profile %s.", path)
	s.refreshTitle()
}

// refreshTitle sets the window title from the profile and, if enabled, the
// window details.
func (s *session) refreshTitle() {
	title := s.profile.Window.Title
	if s.detailed {
		title = fmt.Sprintf("%s [%s %s]", title, s.size, s.state)
	}
	if title == s.win.Title() {
		return
	}
	if err := s.win.SetTitle(title); err != nil {
		log.Warn("Failed to set title: %s", err)
		return
	}
	s.retitle(title)
}
