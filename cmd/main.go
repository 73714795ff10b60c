package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"agendafarma/config"
	"agendafarma/internal/pkg/logger"

	"agendafarma/internal/api/agendamento"
	"agendafarma/internal/api/router"
	"agendafarma/internal/api/usuario"
	"agendafarma/internal/repository/agendamentorepo"
	"agendafarma/internal/repository/usuariorepo"
	"agendafarma/internal/service/agendamentoservice"
	"agendafarma/internal/service/usuarioservice"
)

// @title AgendaFarma API
// @version 1.0
// @description API de agendamentos e cadastro de clientes da farmácia.
// @BasePath /
func main() {
	// 1. Variáveis de ambiente (.env na raiz, se existir) e configuração.
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// 2. Injeção de dependências: Repository -> Service -> Handler.

	// A coleção de agendamentos vive em memória; a de usuários, em arquivo
	// JSON relido e reescrito por inteiro a cada operação.
	agendamentoRepo := agendamentorepo.NewAgendamentoRepository(log)
	usuarioRepo := usuariorepo.NewUsuarioRepository(cfg.UsuariosFilePath, log)
	log.Debug("Repositórios inicializados.", map[string]interface{}{"usuarios_file": cfg.UsuariosFilePath})

	agendamentoSvc := agendamentoservice.NewService(agendamentoRepo, usuarioRepo, log)
	usuarioSvc := usuarioservice.NewService(usuarioRepo, log)
	log.Debug("Serviços inicializados.", nil)

	agendamentoHandler := agendamento.NewHandler(agendamentoSvc, log)
	usuarioHandler := usuario.NewHandler(usuarioSvc, log)
	log.Debug("Handlers inicializados.", nil)

	// 3. Roteador e servidor HTTP.
	r := router.NewRouter(agendamentoHandler, usuarioHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// 4. Execução e graceful shutdown.
	go func() {
		log.Info("Servidor AgendaFarma ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
