package conslisp

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of one top-level expression.
type Result struct {
	Expr  Value
	Value Value
	Err   error
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s\n%s", Print(r.Expr), PrintError(r.Err))
	}
	return fmt.Sprintf("%s\n=> %s", Print(r.Expr), Print(r.Value))
}

// Session evaluates top-level expressions one after another, carrying the
// environment from each into the next. A failed expression leaves the
// environment as it was before it. Not safe for concurrent use.
type Session struct {
	env Env
	log logrus.FieldLogger
}

type Option func(*Session)

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// WithEnv starts the session from env instead of NewEnv().
func WithEnv(env Env) Option {
	return func(s *Session) {
		s.env = env
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.env == nil {
		s.env = NewEnv()
	}
	if s.log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		s.log = quiet
	}
	return s
}

// Env returns the current environment.
func (s *Session) Env() Env {
	return s.env
}

func (s *Session) Eval(expr Value) (Value, error) {
	log := s.log.WithField("expr", Print(expr))

	val, env, err := Eval(expr, s.env)
	if err != nil {
		fields := logrus.Fields{"error": err.Error()}
		var lispErr *Error
		if errors.As(err, &lispErr) {
			fields["kind"] = lispErr.Kind.String()
		}
		log.WithFields(fields).Warn("evaluation failed")
		return nil, err
	}

	s.env = env
	log.WithField("result", Print(val)).Debug("evaluated")
	return val, nil
}

// Run evaluates every expression in order, continuing past failures.
func (s *Session) Run(exprs []Value) []Result {
	results := make([]Result, len(exprs))
	for i, expr := range exprs {
		val, err := s.Eval(expr)
		results[i] = Result{Expr: expr, Value: val, Err: err}
	}
	return results
}

// EvalSource reads all of src and runs it. A syntax error stops before
// anything is evaluated.
func (s *Session) EvalSource(src string) ([]Result, error) {
	exprs, err := ReadAll(src)
	if err != nil {
		s.log.WithError(err).Error("failed to read source")
		return nil, err
	}
	s.log.WithField("count", len(exprs)).Debug("read expressions")
	return s.Run(exprs), nil
}
