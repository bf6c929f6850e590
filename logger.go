// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import "context"

// Logger receives operational messages from [Transact] about connection
// lifecycle events. It is never used to trace effect evaluation itself;
// that remains outside the scope of this library.
type Logger interface {
	Debug(ctx context.Context, msg string, keyvals ...any)
	Info(ctx context.Context, msg string, keyvals ...any)
	Error(ctx context.Context, msg string, keyvals ...any)
}

// NoOpLogger discards every message. It is the default when [Transact]
// is not given a Logger.
type NoOpLogger struct{}

func (NoOpLogger) Debug(context.Context, string, ...any) {}
func (NoOpLogger) Info(context.Context, string, ...any)  {}
func (NoOpLogger) Error(context.Context, string, ...any) {}
