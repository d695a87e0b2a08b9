package http1

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/indigo-web/akasabi/config"
	"github.com/indigo-web/akasabi/http"
	"github.com/indigo-web/akasabi/http/method"
	"github.com/indigo-web/akasabi/http/proto"
	"github.com/indigo-web/akasabi/http/status"
	"github.com/indigo-web/akasabi/internal/requestgen"
	"github.com/indigo-web/akasabi/transport/dummy"
	"github.com/stretchr/testify/require"
)

func newSuit(cfg *config.Config, handler http.Handler, data ...[]byte) (*Suit, *dummy.Conn) {
	conn := dummy.NewConn(data...)
	suit := New(cfg, handler, conn, nil)
	suit.now = func() time.Time {
		return fixedTime
	}

	return suit, conn
}

func hello(request *http.Request) *http.Response {
	return http.String(request, "Hello, world!")
}

func TestSuit(t *testing.T) {
	t.Run("GET request", func(t *testing.T) {
		var (
			m        method.Method
			protocol proto.Protocol
			path     string
		)

		suit, conn := newSuit(config.Default(), func(request *http.Request) *http.Response {
			m, protocol, path = request.Method(), request.Protocol(), request.Path()
			require.Equal(t, http.BodyAbsent, request.Body().Kind())
			require.Equal(t, "localhost", request.Header().Value("host"))
			require.Equal(t, "127.0.0.1:31337", request.Remote().String())
			return hello(request)
		}, []byte("GET /path?a=1&b=2 HTTP/1.1\r\nHost: localhost\r\n\r\n"))

		require.True(t, suit.ServeOnce())
		require.Equal(t, method.GET, m)
		require.Equal(t, proto.HTTP11, protocol)
		require.Equal(t, "/path?a=1&b=2", path)

		want := "HTTP/1.1 200 OK\r\n" +
			fixedDate +
			"Server: Akasabi 0.1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"Content-Length: 13\r\n" +
			"Connection: keep-alive\r\n" +
			"\r\n" +
			"Hello, world!"
		require.Equal(t, want, string(conn.Written()))
	})

	t.Run("POST form", func(t *testing.T) {
		var (
			body  string
			pairs [][2]string
		)

		suit, _ := newSuit(config.Default(), func(request *http.Request) *http.Response {
			body = string(request.Body().Clone())
			for param := range request.Form().All() {
				pairs = append(pairs, [2]string{param.Name(), param.Value()})
			}

			return nil
		}, []byte("POST / HTTP/1.1\r\nContent-Length: 11\r\n\r\nhello=world"))

		require.True(t, suit.ServeOnce())
		require.Equal(t, "hello=world", body)
		require.Equal(t, [][2]string{{"hello", "world"}}, pairs)
	})

	t.Run("unsupported protocol", func(t *testing.T) {
		called := false
		suit, conn := newSuit(config.Default(), func(*http.Request) *http.Response {
			called = true
			return nil
		}, []byte("GET /x HTTP/0.9\r\n\r\nGET / HTTP/1.1\r\n\r\n"))

		suit.Serve()
		require.False(t, called)
		require.Equal(t, "HTTP/1.1 501 Not Implemented\r\n\r\n", string(conn.Written()))
	})

	t.Run("keep-alive then close", func(t *testing.T) {
		var served []string
		handler := func(request *http.Request) *http.Response {
			served = append(served, request.Path())
			return hello(request)
		}

		suit, conn := newSuit(config.Default(), handler,
			[]byte("GET /1 HTTP/1.1\r\nConnection: keep-alive\r\n\r\n"),
			[]byte("GET /2 HTTP/1.1\r\nConnection: keep-alive\r\n\r\n"),
			[]byte("GET /3 HTTP/1.1\r\nConnection: close\r\n\r\n"),
			[]byte("GET /4 HTTP/1.1\r\n\r\n"),
		)

		suit.Serve()
		require.Equal(t, []string{"/1", "/2", "/3"}, served)

		responses := strings.Split(string(conn.Written()), "HTTP/1.1 200 OK\r\n")[1:]
		require.Len(t, responses, 3)
		require.Contains(t, responses[0], "Connection: keep-alive\r\n")
		require.Contains(t, responses[1], "Connection: keep-alive\r\n")
		require.Contains(t, responses[2], "Connection: close\r\n")
	})

	t.Run("requests in a single read", func(t *testing.T) {
		var served []string
		suit, _ := newSuit(config.Default(), func(request *http.Request) *http.Response {
			served = append(served, request.Path()+" "+request.Body().String())
			return nil
		}, []byte(
			"POST /a HTTP/1.1\r\nContent-Length: 3\r\n\r\nabc"+
				"GET /b HTTP/1.1\r\n\r\n"+
				"POST /c HTTP/1.1\r\nConnection: close\r\nContent-Length: 2\r\n\r\nde",
		))

		suit.Serve()
		require.Equal(t, []string{"/a abc", "/b ", "/c de"}, served)
	})

	t.Run("GET with a body", func(t *testing.T) {
		var served []string
		suit, conn := newSuit(config.Default(), func(request *http.Request) *http.Response {
			served = append(served, request.Path())
			require.Equal(t, http.BodyAbsent, request.Body().Kind())
			return nil
		}, []byte(
			"GET /first HTTP/1.1\r\nContent-Length: 3\r\n\r\nabc"+
				"GET /next HTTP/1.1\r\nConnection: close\r\n\r\n",
		))

		suit.Serve()
		require.Equal(t, []string{"/first", "/next"}, served)
		require.NotContains(t, string(conn.Written()), "501")
	})

	t.Run("dispersed request", func(t *testing.T) {
		request := requestgen.Post("hello", []byte("hello=world"), requestgen.Headers(10)...)
		for _, n := range []int{1, 2, 7, 100} {
			var body string
			suit, _ := newSuit(config.Default(), func(request *http.Request) *http.Response {
				body = request.Body().String()
				return nil
			}, disperse(request, n)...)

			require.True(t, suit.ServeOnce(), n)
			require.Equal(t, "hello=world", body, n)
		}
	})

	t.Run("default connection", func(t *testing.T) {
		suit, conn := newSuit(config.Default(), http.Respond, []byte("GET / HTTP/1.0\r\n\r\n"))
		require.False(t, suit.ServeOnce())
		want := "HTTP/1.0 200 OK\r\n" +
			fixedDate +
			"Server: Akasabi 0.1.0\r\n" +
			"Connection: close\r\n" +
			"\r\n"
		require.Equal(t, want, string(conn.Written()))

		suit, conn = newSuit(config.Default(), hello, []byte("GET / HTTP/1.0\r\nConnection: keep-alive\r\n\r\n"))
		require.True(t, suit.ServeOnce())
		require.Contains(t, string(conn.Written()), "Connection: keep-alive\r\n")
	})

	t.Run("nil response", func(t *testing.T) {
		suit, conn := newSuit(config.Default(), func(*http.Request) *http.Response {
			return nil
		}, []byte("GET / HTTP/1.1\r\n\r\n"))

		require.True(t, suit.ServeOnce())
		require.NotContains(t, string(conn.Written()), "Content-Length")
		require.Contains(t, string(conn.Written()), "Connection: keep-alive\r\n")
	})

	t.Run("handler overrides the directive", func(t *testing.T) {
		suit, conn := newSuit(config.Default(), func(request *http.Request) *http.Response {
			return http.Respond(request).Close()
		}, []byte("GET / HTTP/1.1\r\n\r\n"))

		require.False(t, suit.ServeOnce())
		require.Contains(t, string(conn.Written()), "Connection: close\r\n")
	})

	t.Run("error status", func(t *testing.T) {
		suit, conn := newSuit(config.Default(), func(request *http.Request) *http.Response {
			return http.Error(request, status.ErrUnsupportedMediaType)
		}, []byte("GET / HTTP/1.1\r\n\r\n"))

		require.True(t, suit.ServeOnce())
		require.Regexp(t, "^HTTP/1.1 500 Internal Server Error\r\n", string(conn.Written()))
	})

	t.Run("silent close before request line", func(t *testing.T) {
		for _, data := range [][]byte{nil, []byte("GET / HT")} {
			suit, conn := newSuit(config.Default(), hello, data)
			require.False(t, suit.ServeOnce())
			require.Empty(t, conn.Written())
		}
	})

	t.Run("stream end terminates headers", func(t *testing.T) {
		suit, conn := newSuit(config.Default(), hello, []byte("GET / HTTP/1.1\r\nHost: localhost\r\n"))
		require.True(t, suit.ServeOnce())
		require.Contains(t, string(conn.Written()), "Hello, world!")
		require.False(t, suit.ServeOnce())
	})

	t.Run("premature end of body", func(t *testing.T) {
		suit, conn := newSuit(config.Default(), hello, []byte("POST / HTTP/1.1\r\nContent-Length: 20\r\n\r\nshort"))
		require.False(t, suit.ServeOnce())
		require.Empty(t, conn.Written())
	})
}

func TestSuitRejects(t *testing.T) {
	cfg := config.Default()

	for _, tc := range []struct {
		Name    string
		Request string
	}{
		{"unknown method", "PUT / HTTP/1.1\r\n\r\n"},
		{"method case only", "GETS / HTTP/1.1\r\n\r\n"},
		{"no protocol", "GET /\r\n\r\n"},
		{"empty request", "\r\nGET / HTTP/1.1\r\n\r\n"},
		{"missing content length", "POST / HTTP/1.1\r\n\r\nhello"},
		{"malformed content length", "POST / HTTP/1.1\r\nContent-Length: 1x\r\n\r\nh"},
		{"malformed content length on GET", "GET / HTTP/1.1\r\nContent-Length: 1x\r\n\r\nh"},
		{"GET body too large", "GET / HTTP/1.1\r\nContent-Length: " + strconv.Itoa(cfg.Body.MaxSize+1) + "\r\n\r\n"},
		{"header line too long", "GET / HTTP/1.1\r\nX: " + strings.Repeat("a", cfg.NET.ReadBufferSize) + "\r\n\r\n"},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			called := false
			suit, conn := newSuit(cfg, func(*http.Request) *http.Response {
				called = true
				return nil
			}, []byte(tc.Request))

			require.False(t, suit.ServeOnce())
			require.False(t, called)
			require.Equal(t, "HTTP/1.1 501 Not Implemented\r\n\r\n", string(conn.Written()))
		})
	}
}

func TestSuitBodyBoundaries(t *testing.T) {
	cfg := config.Default()
	capacity, maxSize := cfg.NET.ReadBufferSize, cfg.Body.MaxSize

	serve := func(length int) (http.BodyKind, string) {
		var (
			kind http.BodyKind
			body string
		)

		suit, conn := newSuit(cfg, func(request *http.Request) *http.Response {
			kind = request.Body().Kind()
			body = string(request.Body().Clone())
			return nil
		}, disperse(requestgen.Post("", []byte(strings.Repeat("a", length))), 4096)...)

		suit.ServeOnce()
		return kind, body + string(conn.Written())
	}

	t.Run("capacity", func(t *testing.T) {
		kind, got := serve(capacity)
		require.Equal(t, http.BodyBorrowed, kind)
		require.True(t, strings.HasPrefix(got, strings.Repeat("a", capacity)+"HTTP/1.1 200 OK"))
	})

	t.Run("capacity plus one", func(t *testing.T) {
		kind, got := serve(capacity + 1)
		require.Equal(t, http.BodyOwned, kind)
		require.True(t, strings.HasPrefix(got, strings.Repeat("a", capacity+1)+"HTTP/1.1 200 OK"))
	})

	t.Run("maximal size", func(t *testing.T) {
		kind, _ := serve(maxSize)
		require.Equal(t, http.BodyOwned, kind)
	})

	t.Run("maximal size plus one", func(t *testing.T) {
		kind, got := serve(maxSize + 1)
		require.Equal(t, http.BodyAbsent, kind)
		require.Equal(t, "HTTP/1.1 501 Not Implemented\r\n\r\n", got)
	})
}
