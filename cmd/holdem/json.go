package main

import (
	"bufio"
	"encoding/json"
	"io"
	"zarena/pkg/playable"

	"github.com/sirupsen/logrus"
)

// serveJSON reads one payload per line and writes one response per line
// Errors are reported to the driver and do not stop the loop.
func serveJSON(env playable.Environment, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		res, err := handleLine(env, line)
		if err != nil {
			logrus.WithError(err).Debug("payload rejected")
			res = &playable.Response{
				Key:   "error",
				Value: err.Error(),
			}
		}

		if err := encoder.Encode(res); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func handleLine(env playable.Environment, line []byte) (*playable.Response, error) {
	payload, err := playable.ParsePayload(line)
	if err != nil {
		return nil, err
	}

	return playable.Dispatch(env, payload)
}
