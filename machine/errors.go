package machine

import "errors"

var ErrNoSink = errors.New("no display sink supplied")
var ErrShowFailed = errors.New("display sink rejected the frame")
