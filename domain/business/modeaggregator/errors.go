package modeaggregator

import "errors"

var ErrEmptyGroup = errors.New("no records to group")
