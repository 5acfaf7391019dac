package modules

import "log"

// PetFactory 创建一只全新挂载的桌宠
type PetFactory func() (*PetModule, error)

// DeployToggle 部署/召回开关
// 每次部署都通过工厂创建新模块，召回时卸载并丢弃，两次部署之间不保留任何状态
type DeployToggle struct {
	factory PetFactory
	current *PetModule
}

// NewDeployToggle 创建开关，初始为未部署
func NewDeployToggle(factory PetFactory) *DeployToggle {
	return &DeployToggle{factory: factory}
}

// Deploy 部署桌宠；已部署时返回当前实例
func (t *DeployToggle) Deploy() (*PetModule, error) {
	if t.current != nil {
		return t.current, nil
	}
	pet, err := t.factory()
	if err != nil {
		return nil, err
	}
	t.current = pet
	log.Printf("[DeployToggle] Drake deployed")
	return pet, nil
}

// Recall 召回桌宠：卸载并丢弃全部状态
func (t *DeployToggle) Recall() {
	if t.current == nil {
		return
	}
	t.current.Unmount()
	t.current = nil
	log.Printf("[DeployToggle] Drake recalled")
}

// Toggle 在部署和召回之间切换，返回切换后的实例（召回后为 nil）
func (t *DeployToggle) Toggle() (*PetModule, error) {
	if t.current != nil {
		t.Recall()
		return nil, nil
	}
	return t.Deploy()
}

// Current 返回当前部署的桌宠，未部署时为 nil
func (t *DeployToggle) Current() *PetModule {
	return t.current
}

// IsDeployed 是否已部署
func (t *DeployToggle) IsDeployed() bool {
	return t.current != nil
}
