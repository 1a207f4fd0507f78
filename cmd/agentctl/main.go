// agentctl exercises a running leave-agent API from the command line: list
// the action catalog, invoke a single action, or run the scripted smoke
// sequence used during development.
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

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:           "agentctl",
		Short:         "Client for the HR leave agent API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:3000", "Base URL of the leave-agent API")

	cmd.AddCommand(actionsCommand(&baseURL))
	cmd.AddCommand(invokeCommand(&baseURL))
	cmd.AddCommand(smokeCommand(&baseURL))
	return cmd
}

func actionsCommand(baseURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "Print the action catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, _, err := httpGet(*baseURL + "/api/v1/agent/actions")
			if err != nil {
				return err
			}
			return printPretty(cmd.OutOrStdout(), body)
		},
	}
}

func invokeCommand(baseURL *string) *cobra.Command {
	var (
		action string
		params []string
	)

	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Invoke a single action",
		Long: `Invoke a single action with key=value parameters.

Examples:
  agentctl invoke --action check_leave_balance --param employee_id=E001
  agentctl invoke --action submit_leave_request \
      --param employee_id=E003 --param leave_type=PTO \
      --param start_date=2026-03-10 --param end_date=2026-03-12`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parameters := make(map[string]string, len(params))
			for _, p := range params {
				k, v, ok := strings.Cut(p, "=")
				if !ok {
					return fmt.Errorf("invalid --param %q, expected key=value", p)
				}
				parameters[k] = v
			}

			body, status, err := invoke(*baseURL, action, parameters)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "HTTP %d\n", status)
			return printPretty(cmd.OutOrStdout(), body)
		},
	}

	cmd.Flags().StringVar(&action, "action", "", "Action name from the catalog")
	cmd.Flags().StringArrayVar(&params, "param", nil, "Parameter as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("action")
	return cmd
}

func smokeCommand(baseURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "smoke",
		Short: "Run the scripted smoke sequence against a live server",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			steps := []struct {
				title  string
				action string
				params map[string]string
			}{
				{"Check leave balance", "check_leave_balance", map[string]string{"employee_id": "E001"}},
				{"Policy lookup", "get_company_policy", map[string]string{"topic": "remote work"}},
				{"Team calendar", "get_team_calendar", map[string]string{"team_name": "engineering", "month": "March 2026"}},
				{"Submit leave request", "submit_leave_request", map[string]string{
					"employee_id": "E003", "leave_type": "PTO",
					"start_date": "2026-03-20", "end_date": "2026-03-24",
				}},
				{"Denied request (no PTO left)", "submit_leave_request", map[string]string{
					"employee_id": "E004", "leave_type": "PTO",
					"start_date": "2026-03-10", "end_date": "2026-03-10",
				}},
			}

			for i, step := range steps {
				fmt.Fprintf(out, "\n>>> TEST %d: %s\n", i+1, step.title)
				body, status, err := invoke(*baseURL, step.action, step.params)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "HTTP %d\n", status)
				if err := printPretty(out, body); err != nil {
					return err
				}
			}
			fmt.Fprintln(out, "\nAll smoke steps complete.")
			return nil
		},
	}
}

func invoke(baseURL, action string, parameters map[string]string) ([]byte, int, error) {
	payload, err := json.Marshal(map[string]any{
		"action":     action,
		"parameters": parameters,
	})
	if err != nil {
		return nil, 0, err
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(baseURL+"/api/v1/agent/invoke", "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}

func httpGet(url string) ([]byte, int, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}

func printPretty(w io.Writer, body []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		fmt.Fprintln(w, string(body))
		return nil
	}
	fmt.Fprintln(w, buf.String())
	return nil
}
