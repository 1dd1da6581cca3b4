package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/ledongthuc/pdf"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"

	"github.com/Raj6773/Resume/internal/shared/util"
	"github.com/Raj6773/Resume/resume/contract"
	"github.com/Raj6773/Resume/resume/model"
	"github.com/Raj6773/Resume/resume/render"
)

func main() {
	flags := pflag.NewFlagSet("renderdemo", pflag.ExitOnError)
	outPath := flags.StringP("out", "o", "./out/"+render.FileName, "output path for generated PDF")
	imagePath := flags.StringP("image", "i", "", "optional JPEG or PNG profile picture")
	showPlan := flags.Bool("plan", false, "print the layout ops as a table")
	uncompressed := flags.Bool("uncompressed", false, "write uncompressed content streams")
	_ = flags.Parse(os.Args[1:])

	candidate := sampleCandidate()
	if *imagePath != "" {
		data, err := os.ReadFile(*imagePath)
		if err != nil {
			fail("read image: %v", err)
		}
		candidate.Image = &model.ProfileImage{FileName: filepath.Base(*imagePath), Data: data}
	}

	if res := contract.Validate(candidate); !res.OK {
		fail("sample candidate rejected: %s", res.Message)
	}

	opts := render.DefaultOptions()
	opts.Compress = !*uncompressed
	pdfBytes, err := render.RenderResume(candidate, opts)
	if err != nil {
		fail("render failed: %v", err)
	}

	if err := writeOutputs(*outPath, candidate, pdfBytes); err != nil {
		fail("write failed: %v", err)
	}

	if err := validateRenderedPDF(*outPath, candidate); err != nil {
		fail("render validation failed: %v", err)
	}

	if *showPlan {
		printPlan(os.Stdout, render.Layout(candidate, candidate.HasImage()))
	}

	color.Green("OK: wrote %s (%d bytes, sha256 %s)", *outPath, len(pdfBytes), util.Digest(pdfBytes))
}

func fail(format string, args ...any) {
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "FAIL: "+format+"\n", args...)
	os.Exit(1)
}

func writeOutputs(outPath string, candidate model.Candidate, pdfBytes []byte) error {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := os.WriteFile(outPath, pdfBytes, 0o644); err != nil {
		return err
	}

	// Image bytes are left out of the sidecar.
	sidecar := candidate
	sidecar.Image = nil
	payload, err := json.MarshalIndent(sidecar, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "sample_candidate.json"), payload, 0o644)
}

func sampleCandidate() model.Candidate {
	return model.Candidate{
		Name:    "Jordan Lee",
		Email:   "jordan.lee@example.com",
		Phone:   "15550102000",
		Skills:  "Go, PostgreSQL, Kubernetes, Observability",
		Hobbies: "Climbing, Chess",
		Experience: []model.ExperienceEntry{
			{Title: "Senior Backend Engineer", Company: "Northwind Labs", Duration: "2021 - Present"},
			{Title: "Software Engineer", Company: "Tailspin Toys", Duration: "2017 - 2021"},
		},
		Education: []model.EducationEntry{
			{Degree: "BSc Computer Science", Institution: "UT Austin", Year: "2017", Percentage: "86"},
		},
	}
}

// validateRenderedPDF re-opens the written file and checks it is a single page
// carrying the candidate's text.
func validateRenderedPDF(path string, candidate model.Candidate) error {
	f, r, err := pdf.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if n := r.NumPage(); n != 1 {
		return fmt.Errorf("expected 1 page, got %d", n)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return err
	}
	text := buf.String()

	want := []string{candidate.Name, candidate.Email, candidate.Phone}
	want = append(want, candidate.SkillList()...)
	for _, job := range candidate.Experience {
		want = append(want, job.Title)
	}
	for _, edu := range candidate.Education {
		want = append(want, edu.Institution)
	}
	for _, w := range want {
		if w != "" && !strings.Contains(text, w) {
			return fmt.Errorf("missing %q in rendered text", w)
		}
	}
	return nil
}

func printPlan(w io.Writer, plan render.Plan) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Op", "X", "Y", "Text", "Font"})
	for i, op := range plan.Ops {
		font := ""
		if op.Kind == render.OpText {
			font = strings.Join(strings.Fields(op.Font.Family+" "+op.Font.Style+" "+strconv.FormatFloat(op.Font.Size, 'f', -1, 64)), " ")
		}
		table.Append([]string{
			strconv.Itoa(i),
			op.Kind.String(),
			strconv.FormatFloat(op.X, 'f', -1, 64),
			strconv.FormatFloat(op.Y, 'f', -1, 64),
			op.Text,
			font,
		})
	}
	table.Render()

	if plan.Overflows() {
		color.Yellow("warning: content runs past the bottom margin (end y=%.0f)", plan.EndY)
	}
}
