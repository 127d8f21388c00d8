package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logFile, err := setupLogging("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if logFile != nil {
		t.Error("Expected nil log file without a path")
		logFile.Close()
	}

	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
}

func TestSetupLogging_File(t *testing.T) {
	defer log.SetOutput(io.Discard)

	logPath := filepath.Join(t.TempDir(), "logs", "histcompare.log")
	logFile, err := setupLogging(logPath)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	log.Println("Test log message")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}
