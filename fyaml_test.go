package yaml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	yaml "github.com/libfyaml-go/fyaml"
)

func TestEventStreamOrder(t *testing.T) {
	var types []yaml.EventType
	err := yaml.EventStream(strings.NewReader("a: 1\n"), func(ev *yaml.Event) error {
		types = append(types, ev.Type)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []yaml.EventType{
		yaml.StreamStartEvent,
		yaml.DocumentStartEvent,
		yaml.MappingStartEvent,
		yaml.ScalarEvent,
		yaml.ScalarEvent,
		yaml.MappingEndEvent,
		yaml.DocumentEndEvent,
		yaml.StreamEndEvent,
	}, types)
}

func TestEventStreamStopsEarlyOnCallbackError(t *testing.T) {
	boom := require.New(t)
	calls := 0
	err := yaml.EventStream(strings.NewReader("a: 1\n"), func(ev *yaml.Event) error {
		calls++
		if calls == 2 {
			return errStop
		}
		return nil
	})
	boom.ErrorIs(err, errStop)
	boom.Equal(2, calls)
}

var errStop = stopError{}

type stopError struct{}

func (stopError) Error() string { return "stop" }
