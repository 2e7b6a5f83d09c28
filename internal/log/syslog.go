package log

import "github.com/rs/zerolog"

// Syslog priorities as stored in the logOutputLevel setting.
const (
	SyslogEmerg   = 0
	SyslogAlert   = 1
	SyslogCrit    = 2
	SyslogErr     = 3
	SyslogWarning = 4
	SyslogNotice  = 5
	SyslogInfo    = 6
	SyslogDebug   = 7
)

// FromSyslog maps a syslog priority to the closest zerolog level.
// Values above debug enable trace output; negative values are treated
// as emergency.
func FromSyslog(priority int) zerolog.Level {
	switch {
	case priority <= SyslogAlert:
		return zerolog.PanicLevel
	case priority == SyslogCrit:
		return zerolog.FatalLevel
	case priority == SyslogErr:
		return zerolog.ErrorLevel
	case priority == SyslogWarning:
		return zerolog.WarnLevel
	case priority <= SyslogInfo:
		return zerolog.InfoLevel
	case priority == SyslogDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
