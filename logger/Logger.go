package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = New()

// Logger wraps a logrus logger. When console is on, every message is also echoed to
// stdout.
type Logger struct {
	base    *logrus.Logger
	console bool
	stdout  io.Writer
}

func New() *Logger {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetLevel(logrus.InfoLevel)
	return &Logger{base: base, stdout: os.Stdout}
}

// Properties is the content of logger.properties.
type Properties struct {
	LogFilename string
	MaxSize     int
	MaxBackups  int
	MaxAge      int
	Compress    bool
	Level       string
	Console     bool
}

func newLoggerViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("logFilename", "logs/pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Debug")
	v.SetDefault("console", false)
	return v
}

func readLoggerProperties(v *viper.Viper) (Properties, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Properties{}, fmt.Errorf("read logger config: %w", err)
		}
	}

	return Properties{
		LogFilename: cast.ToString(v.Get("logFilename")),
		MaxSize:     cast.ToInt(v.Get("maxSize")),
		MaxBackups:  cast.ToInt(v.Get("maxBackups")),
		MaxAge:      cast.ToInt(v.Get("maxAge")),
		Compress:    cast.ToBool(v.Get("compress")),
		Level:       cast.ToString(v.Get("level")),
		Console:     cast.ToBool(v.Get("console")),
	}, nil
}

// Init reads logger.properties from dir and routes JSON logs into a rolling file. A
// missing file keeps the defaults; the level follows later edits of the file.
func (l *Logger) Init(dir string) error {
	v := newLoggerViper(dir)
	props, err := readLoggerProperties(v)
	if err != nil {
		return err
	}
	l.Apply(props)

	if v.ConfigFileUsed() != "" {
		v.OnConfigChange(func(e fsnotify.Event) {
			// 編輯器存檔可能是改寫或重新建立
			if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				return
			}
			level := ParseLevel(cast.ToString(v.Get("level")))
			l.base.SetLevel(level)
			l.Info(fmt.Sprintf(LogLevelChangedMsg, level))
		})
		v.WatchConfig()
	}
	return nil
}

// Apply configures output, format and level from props.
func (l *Logger) Apply(props Properties) {
	l.base.SetFormatter(&logrus.JSONFormatter{})
	l.base.SetOutput(&lumberjack.Logger{
		Filename:   props.LogFilename,
		MaxSize:    props.MaxSize,
		MaxBackups: props.MaxBackups,
		MaxAge:     props.MaxAge,
		Compress:   props.Compress,
	})
	l.base.SetLevel(ParseLevel(props.Level))
	l.console = props.Console
}

// SetConsole turns the stdout echo on or off. The terminal frontend needs it off.
func (l *Logger) SetConsole(on bool) { l.console = on }

// SetOutput sends log records to w instead of the rolling file.
func (l *Logger) SetOutput(w io.Writer) { l.base.SetOutput(w) }

func (l *Logger) SetLevel(level logrus.Level) { l.base.SetLevel(level) }

func (l *Logger) Level() logrus.Level { return l.base.GetLevel() }

func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(cast.ToString(level)) {

	case "trace":
		return logrus.TraceLevel

	case "info":
		return logrus.InfoLevel

	case "warn":
		return logrus.WarnLevel

	case "error":
		return logrus.ErrorLevel

	case "fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

func (l *Logger) echo(level logrus.Level, name, message string) {
	l.echoFields(level, name, nil, message)
}

// echoFields prints fields after the message as key=value, keys sorted.
func (l *Logger) echoFields(level logrus.Level, name string, fields logrus.Fields, message string) {
	if !l.console || !l.base.IsLevelEnabled(level) {
		return
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(name + ": " + message)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, fields[k])
	}
	fmt.Fprintln(l.stdout, sb.String())
}

func (l *Logger) InfoFields(fields logrus.Fields, message string) {
	l.base.WithFields(fields).Info(message)
	l.echoFields(logrus.InfoLevel, "Info", fields, message)
}

func (l *Logger) ErrorFields(fields logrus.Fields, message string) {
	l.base.WithFields(fields).Error(message)
	l.echoFields(logrus.ErrorLevel, "Error", fields, message)
}

func (l *Logger) DebugFields(fields logrus.Fields, message string) {
	l.base.WithFields(fields).Debug(message)
	l.echoFields(logrus.DebugLevel, "Debug", fields, message)
}

func (l *Logger) WarnFields(fields logrus.Fields, message string) {
	l.base.WithFields(fields).Warn(message)
	l.echoFields(logrus.WarnLevel, "Warn", fields, message)
}

func (l *Logger) Info(message string) {
	l.base.Info(message)
	l.echo(logrus.InfoLevel, "Info", message)
}

func (l *Logger) Error(message string) {
	l.base.Error(message)
	l.echo(logrus.ErrorLevel, "Error", message)
}

func (l *Logger) Debug(message string) {
	l.base.Debug(message)
	l.echo(logrus.DebugLevel, "Debug", message)
}

func (l *Logger) Warn(message string) {
	l.base.Warn(message)
	l.echo(logrus.WarnLevel, "Warn", message)
}

func (l *Logger) Fatal(message string) {
	l.echo(logrus.FatalLevel, "Fatal", message)
	l.base.Fatal(message)
}
