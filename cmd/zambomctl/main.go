// zambomctl es el CLI de operación contra la API PF-Zambom: health
// checks y CRUD de investors/trips usando un access token de Auth0.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type client struct {
	BaseURL   string
	Token     string
	OutFormat string // "json" | "text"
	HTTP      *http.Client
}

func (c *client) do(method, path string, body []byte) (int, []byte, error) {
	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) print(status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Println(string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Println(string(body))
	} else {
		fmt.Printf("status=%d\n", status)
	}
}

// get corre un GET y falla con el body si el status no es 2xx.
func (c *client) get(path string) error {
	status, body, err := c.do("GET", path, nil)
	if err != nil {
		return err
	}
	if status/100 != 2 {
		return fmt.Errorf("GET %s fallo: status=%d body=%s", path, status, string(body))
	}
	c.print(status, body)
	return nil
}

func (c *client) requireToken() error {
	if c.Token == "" {
		return fmt.Errorf("falta el token (flag --token o env PFZAMBOM_TOKEN)")
	}
	return nil
}

func main() {
	var (
		baseURL = envOr("PFZAMBOM_URL", "http://localhost:5000")
		token   = envOr("PFZAMBOM_TOKEN", "")
		out     = envOr("PFZAMBOM_OUT", "text")
		timeout = 30 * time.Second
	)

	root := &cobra.Command{
		Use:   "zambomctl",
		Short: "CLI para la API PF-Zambom (investors y trips)",
	}

	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "URL base de la API (env PFZAMBOM_URL)")
	root.PersistentFlags().StringVar(&token, "token", token, "Access token Bearer (env PFZAMBOM_TOKEN)")
	root.PersistentFlags().StringVar(&out, "out", out, "Formato de salida: json|text")

	cl := &client{HTTP: &http.Client{Timeout: timeout}}
	// Los flags se resuelven recién en Execute; sincronizar acá.
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cl.BaseURL = baseURL
		cl.Token = token
		cl.OutFormat = out
	}

	// salud
	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "GET /health (no requiere token)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cl.get("/health")
		},
	}
	readyCmd := &cobra.Command{
		Use:   "ready",
		Short: "GET /ready (no requiere token)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cl.get("/ready")
		},
	}

	// investors
	investorsCmd := &cobra.Command{Use: "investors", Short: "Operaciones sobre investors"}

	investorsListCmd := &cobra.Command{
		Use:   "list",
		Short: "Listar investors (más recientes primero)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cl.requireToken(); err != nil {
				return err
			}
			return cl.get("/investors")
		},
	}

	var invName, invCorretora, invPerfil string
	var invValor float64
	investorsCreateCmd := &cobra.Command{
		Use:   "create",
		Short: "Crear un investor",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cl.requireToken(); err != nil {
				return err
			}
			payload := map[string]any{
				"name":            invName,
				"corretora":       invCorretora,
				"valor_investido": invValor,
				"perfil":          invPerfil,
			}
			b, _ := json.Marshal(payload)
			status, body, err := cl.do("POST", "/investors", b)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("create fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	investorsCreateCmd.Flags().StringVar(&invName, "name", "", "Nombre del investor")
	investorsCreateCmd.Flags().StringVar(&invCorretora, "corretora", "", "Corretora")
	investorsCreateCmd.Flags().Float64Var(&invValor, "valor", 0, "Valor investido")
	investorsCreateCmd.Flags().StringVar(&invPerfil, "perfil", "", "Perfil (conservador|moderado|arrojado)")

	investorsDeleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Borrar un investor (requiere token de admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cl.requireToken(); err != nil {
				return err
			}
			status, body, err := cl.do("DELETE", "/investors/"+args[0], nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("delete fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}

	investorsCmd.AddCommand(investorsListCmd, investorsCreateCmd, investorsDeleteCmd)

	// trips
	tripsCmd := &cobra.Command{Use: "trips", Short: "Operaciones sobre trips"}

	tripsListCmd := &cobra.Command{
		Use:   "list",
		Short: "Listar trips (más recientes primero)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cl.requireToken(); err != nil {
				return err
			}
			return cl.get("/trips")
		},
	}

	var trTitulo, trDestino, trInicio, trFim string
	var trPreco float64
	tripsCreateCmd := &cobra.Command{
		Use:   "create",
		Short: "Crear un trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cl.requireToken(); err != nil {
				return err
			}
			payload := map[string]any{
				"titulo":      trTitulo,
				"destino":     trDestino,
				"data_inicio": trInicio,
				"data_fim":    trFim,
				"preco":       trPreco,
			}
			b, _ := json.Marshal(payload)
			status, body, err := cl.do("POST", "/trips", b)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("create fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	tripsCreateCmd.Flags().StringVar(&trTitulo, "titulo", "", "Título del viaje")
	tripsCreateCmd.Flags().StringVar(&trDestino, "destino", "", "Destino")
	tripsCreateCmd.Flags().StringVar(&trInicio, "inicio", "", "Fecha de inicio (YYYY-MM-DD)")
	tripsCreateCmd.Flags().StringVar(&trFim, "fim", "", "Fecha de fin (YYYY-MM-DD)")
	tripsCreateCmd.Flags().Float64Var(&trPreco, "preco", 0, "Precio")

	tripsDeleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Borrar un trip (requiere token de admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cl.requireToken(); err != nil {
				return err
			}
			status, body, err := cl.do("DELETE", "/trips/"+args[0], nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("delete fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}

	tripsCmd.AddCommand(tripsListCmd, tripsCreateCmd, tripsDeleteCmd)

	root.AddCommand(healthCmd, readyCmd, investorsCmd, tripsCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
