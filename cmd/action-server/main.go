package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apod/pkg/action"
	"apod/pkg/apodclient"
	"apod/pkg/config"
	"apod/pkg/handler"
	srvc "apod/pkg/service"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	cnf, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %s", err.Error())
	}
	cnf.SetupLogger()

	client := apodclient.NewClient(apodclient.Config{
		BaseURL:   cnf.BaseURL,
		Timeout:   cnf.Timeout(),
		UserAgent: cnf.UserAgent,
	})

	a := action.NewAction(srvc.NewService(client), cnf.Key())
	runTimeout := cnf.Timeout() + 5*time.Second
	handlers := handler.NewHandler(a, runTimeout)

	addr := fmt.Sprintf("%s:%d", cnf.Server.Address, cnf.Server.Port)

	srv := new(server)
	go func() {
		logrus.Infof("apod action server listening on %s", addr)
		if err := srv.Run(addr, handlers.InitRoutes(), runTimeout); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Printf("apod action server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}

type server struct {
	httpSrv *http.Server
}

// Run serves h. The write deadline outlasts runTimeout so a run that ends
// at its deadline still gets its error response out.
func (s *server) Run(addr string, h http.Handler, runTimeout time.Duration) error {
	s.httpSrv = newHTTPServer(addr, h, runTimeout)

	return s.httpSrv.ListenAndServe()
}

func (s *server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func newHTTPServer(addr string, h http.Handler, runTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      runTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
