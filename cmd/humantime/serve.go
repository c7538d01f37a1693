package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/function61/gokit/httputils"
	"github.com/function61/gokit/logex"
	"github.com/function61/gokit/osutil"
	"github.com/function61/gokit/taskrunner"
	"github.com/function61/humantime/pkg/duration"
	"github.com/function61/humantime/pkg/durationprofile"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

type formatResponse struct {
	Formatted string   `json:"formatted,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

func serveHandler(profile *durationprofile.Profile, logger *log.Logger) http.Handler {
	logl := logex.Levels(logger)

	routes := mux.NewRouter()

	respond := func(w http.ResponseWriter, status int, response formatResponse) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			logl.Error.Printf("respond: %v", err)
		}
	}

	// GET /format/90061?minUnit=second&and=ja
	routes.HandleFunc("/format/{time}", func(w http.ResponseWriter, r *http.Request) {
		rawOptions, and, err := optionsFromQuery(r.URL.RawQuery)
		if err != nil {
			respond(w, http.StatusBadRequest, formatResponse{Errors: []string{err.Error()}})
			return
		}

		i18n := profile.I18n
		if and != "" {
			i18n = duration.MergeI18n(profile.I18n, duration.I18n{And: and})
		}

		formatted, err := duration.FormatTime(
			parseTime(mux.Vars(r)["time"]),
			durationprofile.OverlayOptions(profile.Options, durationprofile.OptionsFromRaw(rawOptions)),
			i18n)
		if err != nil {
			if validationErr, ok := err.(*duration.ValidationError); ok {
				respond(w, http.StatusBadRequest, formatResponse{Errors: validationErr.Errors})
			} else {
				respond(w, http.StatusInternalServerError, formatResponse{Errors: []string{err.Error()}})
			}
			return
		}

		logl.Debug.Printf("%s => %s", mux.Vars(r)["time"], formatted)

		respond(w, http.StatusOK, formatResponse{Formatted: formatted})
	}).Methods(http.MethodGet)

	// GET /ago/2020-06-25T07:36:31Z
	routes.HandleFunc("/ago/{timestamp}", func(w http.ResponseWriter, r *http.Request) {
		ts, err := time.Parse(time.RFC3339, mux.Vars(r)["timestamp"])
		if err != nil {
			respond(w, http.StatusBadRequest, formatResponse{Errors: []string{err.Error()}})
			return
		}

		respond(w, http.StatusOK, formatResponse{Formatted: duration.Humanize(time.Since(ts))})
	}).Methods(http.MethodGet)

	return routes
}

// query parameters in the order they were given, so unknown options are reported in that
// order. "and" is wording, not an option.
func optionsFromQuery(rawQuery string) ([]durationprofile.RawOption, string, error) {
	raw := []durationprofile.RawOption{}
	and := ""

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}

		keyEscaped, valueEscaped := pair, ""
		if idx := strings.Index(pair, "="); idx != -1 {
			keyEscaped, valueEscaped = pair[:idx], pair[idx+1:]
		}

		key, err := url.QueryUnescape(keyEscaped)
		if err != nil {
			return nil, "", err
		}

		value, err := url.QueryUnescape(valueEscaped)
		if err != nil {
			return nil, "", err
		}

		if key == "and" {
			and = value
			continue
		}

		raw = append(raw, durationprofile.RawOption{Key: key, Value: value})
	}

	return raw, and, nil
}

func serve(ctx context.Context, addr string, profile *durationprofile.Profile, logger *log.Logger) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: serveHandler(profile, logex.Prefix("handler", logger)),
	}

	tasks := taskrunner.New(ctx, logger)

	tasks.Start("listener "+srv.Addr, func(_ context.Context) error {
		return httputils.RemoveGracefulServerClosedError(srv.ListenAndServe())
	})

	tasks.Start("listenershutdowner", httputils.ServerShutdownTask(srv))

	return tasks.Wait()
}

func serveEntry() *cobra.Command {
	flags := &formatFlags{}
	addr := ":80"

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve formatting over HTTP",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			rootLogger := logex.StandardLogger()

			profile, err := flags.resolve(cmd.Flags())
			osutil.ExitIfError(err)

			osutil.ExitIfError(serve(
				osutil.CancelOnInterruptOrTerminate(rootLogger),
				addr,
				profile,
				rootLogger))
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&addr, "addr", "a", addr, "Address to listen on")

	return cmd
}
