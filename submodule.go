// submodule.go
package hclog

// submodule is the runtime state of one registered key: enabled flag,
// current level, current options and current sink. Submodules are created at
// registration and live for the process lifetime; mutation happens through
// the setters only.
type submodule struct {
	key         int
	name        string
	initialized bool
	level       Level
	options     Options
	facade      FacadeVariant
	sink        Sink
}

func newSubmodule(k Key, lvl Level, facade FacadeVariant, opts Options) (submodule, error) {
	sink, err := facade.sink()
	if err != nil {
		return submodule{}, err
	}
	s := submodule{
		key:         k.ID,
		name:        k.Name,
		initialized: true,
		level:       lvl,
		options:     opts,
		facade:      facade,
		sink:        sink,
	}
	s.applySinkOptions()
	return s, nil
}

// applySinkOptions enforces the syslog suppression rule: the daemon already
// stamps time, pid and severity on every message.
func (s *submodule) applySinkOptions() {
	if s.sink != nil && s.sink.Syslog() {
		s.options = s.options.forSyslog()
	}
}

func (s *submodule) setLevel(lvl Level) {
	s.level = lvl
}

func (s *submodule) setFacade(v FacadeVariant) error {
	sink, err := v.sink()
	if err != nil {
		return err
	}
	s.facade = v
	s.sink = sink
	s.applySinkOptions()
	return nil
}

func (s *submodule) setOptions(flags Options) {
	s.options = s.options.With(flags)
	s.applySinkOptions()
}

func (s *submodule) unsetOptions(flags Options) {
	s.options = s.options.Without(flags)
}

func (s *submodule) resetOptions() error {
	opts, err := s.options.Reset()
	if err != nil {
		return err
	}
	s.options = opts
	s.applySinkOptions()
	return nil
}

// willLog is the sole filtering primitive. With OptExactLevelMatch only the
// configured level itself passes; otherwise the level acts as threshold and
// Off disables everything.
func (s *submodule) willLog(lvl Level) bool {
	if s.options.Has(OptExactLevelMatch) {
		return s.level == lvl
	}
	if s.level == Off {
		return false
	}
	return s.level.Enabled(lvl)
}

// log assembles the message for this submodule's options and forwards it to
// the sink. A disabled sink drops the message without error.
func (s *submodule) log(binName string, env scopeEnv, envIdent string, lvl Level, file, funcName string, line int, text string) error {
	if s.sink == nil {
		return nil
	}
	m := newMessage(s.options, binName, file, funcName, line, text)
	m.severity = lvl
	m.modName = s.name
	m.env = env
	m.envIdent = envIdent
	return s.sink.Log(lvl, m.render())
}
