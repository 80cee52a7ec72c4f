package inspect

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hatlonely/sorm/schema"
)

// DumpSnapshot 将表结构序列化为 YAML，用于把期望的表结构存档在迁移脚本旁边
func DumpSnapshot(infos []schema.TableInfo) ([]byte, error) {
	data, err := yaml.Marshal(infos)
	if err != nil {
		return nil, errors.Wrap(err, "marshal snapshot failed")
	}
	return data, nil
}

// LoadSnapshot 从 YAML 反序列化表结构
func LoadSnapshot(data []byte) ([]schema.TableInfo, error) {
	var infos []schema.TableInfo
	if err := yaml.Unmarshal(data, &infos); err != nil {
		return nil, errors.Wrap(err, "unmarshal snapshot failed")
	}
	return infos, nil
}
