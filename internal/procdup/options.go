package procdup

import "os"

type Option func(*Reexec)

// WithExecutable overrides the binary started for the duplicate.
func WithExecutable(path string) Option {
	return func(r *Reexec) {
		r.exe = path
		r.exeErr = nil
	}
}

// WithArgs overrides the arguments (excluding argv[0]) passed to the duplicate.
func WithArgs(args ...string) Option {
	return func(r *Reexec) {
		r.args = args
	}
}

// WithStdio overrides the descriptors the duplicate inherits. Nil entries are
// connected to the null device.
func WithStdio(stdin, stdout, stderr *os.File) Option {
	return func(r *Reexec) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithEnviron overrides the base environment of the duplicate.
func WithEnviron(env []string) Option {
	return func(r *Reexec) {
		r.env = env
	}
}
