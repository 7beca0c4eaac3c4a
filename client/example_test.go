package client_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/adamwoolhether/relocator/client"
)

func ExampleBuild() {
	c, err := client.Build(
		client.WithTimeout(10*time.Second),
		client.WithUserAgent("example/1.0"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = c
	fmt.Println("client built")
	// Output: client built
}

func ExampleClient_WriteSync() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "file contents")
	}))
	defer ts.Close()

	dir, _ := os.MkdirTemp("", "client-example")
	defer os.RemoveAll(dir)

	c, _ := client.Build()

	n, err := c.WriteSync(context.Background(), filepath.Join(dir, "file.txt"), ts.URL)
	if err != nil {
		fmt.Println("malformed source:", err)
		return
	}

	fmt.Println("bytes written:", n)
	// Output: bytes written: 13
}

func ExampleClient_WriteSync_malformed() {
	c, _ := client.Build()

	n, err := c.WriteSync(context.Background(), "never.txt", "http://[::1")

	fmt.Println(n, errors.Is(err, client.ErrMalformedSource))
	// Output: 0 true
}

func ExampleClient_WriteAsync() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "async")
	}))
	defer ts.Close()

	dir, _ := os.MkdirTemp("", "client-example")
	defer os.RemoveAll(dir)

	c, _ := client.Build()

	f := c.WriteAsync(context.Background(), filepath.Join(dir, "file.txt"), ts.URL)
	// ... do other work ...
	n, err := f.Wait()

	fmt.Println(n, err)
	// Output: 5 <nil>
}

func ExampleClient_Transfer() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	dir, _ := os.MkdirTemp("", "client-example")
	defer os.RemoveAll(dir)

	c, _ := client.Build()

	res := c.Transfer(context.Background(), filepath.Join(dir, "file.txt"), ts.URL)

	var statusErr *client.UnexpectedStatusError
	if errors.As(res.Err, &statusErr) {
		fmt.Println("status:", statusErr.StatusCode)
	}
	// Output: status: 404
}
