package generator

import (
	"encoding/json"

	"gopkg.in/yaml.v2"

	"ciscoreport/model"
)

func GenerateJSON(files []model.File) ([]byte, error) {
	data, err := json.MarshalIndent(files, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func GenerateYAML(files []model.File) ([]byte, error) {
	return yaml.Marshal(files)
}
