package api

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/Aiden01/vm/programs"
	"github.com/Aiden01/vm/vm"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ServerConfig struct {
	ListenerAddr string
	Logger       *zap.Logger
}

type Server struct {
	ServerConfig

	echoer *echo.Echo
	logger *zap.Logger
}

func NewServer(config ServerConfig) (*Server, error) {
	if config.Logger == nil {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		config.Logger = l
	}
	s := &Server{
		ServerConfig: config,
		logger:       config.Logger.Named("api"),
	}

	echoer := echo.New()
	echoer.HideBanner = true
	echoer.GET("/programs", s.handleListPrograms)
	echoer.GET("/programs/:name", s.handleDisassemble)
	echoer.POST("/programs/:name/run", s.handleRun)
	s.echoer = echoer

	return s, nil
}

func (s *Server) Start() error {
	s.logger.Info("api server starting",
		zap.String("addr", s.ListenerAddr))
	return s.echoer.Start(s.ListenerAddr)
}

// ServeHTTP lets the server be mounted or driven by httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echoer.ServeHTTP(w, r)
}

func (s *Server) handleListPrograms(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK,
		map[string]any{
			"programs": programs.Names(),
		})
}

func (s *Server) handleDisassemble(ectx echo.Context) error {
	name := ectx.Param("name")
	prog, ok := programs.Get(name)
	if !ok {
		return notFound(ectx, name)
	}

	buf := &bytes.Buffer{}
	if err := vm.Disassemble(buf, prog); err != nil {
		return ectx.JSON(http.StatusInternalServerError,
			map[string]any{
				"error": err.Error(),
			})
	}

	return ectx.JSON(http.StatusOK,
		map[string]any{
			"name":        name,
			"disassembly": lines(buf.String()),
		})
}

func (s *Server) handleRun(ectx echo.Context) error {
	name := ectx.Param("name")
	prog, ok := programs.Get(name)
	if !ok {
		return notFound(ectx, name)
	}

	out := &bytes.Buffer{}
	machine := vm.NewVM(
		vm.LoggerOpt(s.logger),
		vm.OutputOpt(out),
	)
	err := machine.Run(prog)

	resp := map[string]any{
		"name":   name,
		"output": lines(out.String()),
	}
	if err != nil {
		s.logger.Info("program failed",
			zap.String("name", name),
			zap.Error(err))
		resp["error"] = err.Error()
		return ectx.JSON(http.StatusUnprocessableEntity, resp)
	}
	return ectx.JSON(http.StatusOK, resp)
}

func notFound(ectx echo.Context, name string) error {
	return ectx.JSON(http.StatusNotFound,
		map[string]any{
			"error": "no program named " + name,
		})
}

func lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
