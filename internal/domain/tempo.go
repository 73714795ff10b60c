package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Layouts aceitos/produzidos pela API. O horário não carrega fuso: os
// agendamentos são sempre interpretados no horário local da farmácia.
const (
	LayoutDataHora      = "2006-01-02T15:04:05"
	layoutDataHoraCurto = "2006-01-02T15:04"
	LayoutData          = "2006-01-02"
)

// DataHora é o timestamp de um agendamento. Encapsula time.Time apenas para
// controlar o formato JSON (a API fala "2024-05-10T10:00:00", sem fuso).
type DataHora struct {
	time.Time
}

// NovaDataHora constrói uma DataHora a partir de um time.Time.
func NovaDataHora(t time.Time) DataHora {
	return DataHora{Time: t}
}

// UnmarshalJSON aceita RFC3339 e os formatos locais sem fuso.
func (d *DataHora) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339, LayoutDataHora, layoutDataHoraCurto} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("dataHora inválida: %q", s)
}

// MarshalJSON serializa sempre no formato local completo.
func (d DataHora) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(LayoutDataHora))
}

// Igual compara dois horários como instantes (ignora representação).
func (d DataHora) Igual(o DataHora) bool {
	return d.Time.Equal(o.Time)
}

// Data é uma data de calendário (sem hora), usada em dataNascimento.
type Data struct {
	time.Time
}

func (d *Data) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.ParseInLocation(LayoutData, s, time.Local)
	if err != nil {
		return fmt.Errorf("dataNascimento inválida: %q", s)
	}
	d.Time = t
	return nil
}

func (d Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(LayoutData))
}
