package pillar

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/edelwud/pillar-validator/internal/config/modules/source"
	"github.com/edelwud/pillar-validator/internal/domain"
)

// KubernetesSource loads a pillar document from a ConfigMap entry.
type KubernetesSource struct {
	client    kubernetes.Interface
	namespace string
	configMap string
	dataKey   string
	logger    domain.Logger
}

// NewKubernetesSource creates a ConfigMap pillar source using in-cluster
// credentials or a kubeconfig file.
func NewKubernetesSource(config source.KubernetesConfig, logger domain.Logger) (*KubernetesSource, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	clientConfig, err := getKubernetesConfig(config.Kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to get Kubernetes config: %w", err)
	}

	client, err := kubernetes.NewForConfig(clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kubernetes client: %w", err)
	}

	return NewKubernetesSourceWithClient(client, config, logger), nil
}

// NewKubernetesSourceWithClient creates a source around an existing client.
func NewKubernetesSourceWithClient(
	client kubernetes.Interface,
	config source.KubernetesConfig,
	logger domain.Logger,
) *KubernetesSource {
	return &KubernetesSource{
		client:    client,
		namespace: config.Namespace,
		configMap: config.ConfigMap,
		dataKey:   config.DataKey,
		logger:    logger.With(domain.Field{Key: "component", Value: "pillar.k8s"}),
	}
}

// getKubernetesConfig prefers an explicit kubeconfig, then in-cluster
// config, then $KUBECONFIG or ~/.kube/config.
func getKubernetesConfig(kubeconfigPath string) (*rest.Config, error) {
	if kubeconfigPath != "" {
		return clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	}

	if config, err := rest.InClusterConfig(); err == nil {
		return config, nil
	}

	kubeconfigPath = os.Getenv("KUBECONFIG")
	if kubeconfigPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		kubeconfigPath = filepath.Join(homeDir, ".kube", "config")
	}

	config, err := clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build config from kubeconfig: %w", err)
	}

	return config, nil
}

// Name identifies the source.
func (s *KubernetesSource) Name() string {
	return fmt.Sprintf("kubernetes:%s/%s", s.namespace, s.configMap)
}

// Load fetches the ConfigMap and parses the pillar entry.
func (s *KubernetesSource) Load(ctx context.Context) (domain.Pillar, error) {
	cm, err := s.client.CoreV1().ConfigMaps(s.namespace).Get(ctx, s.configMap, metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		return nil, fmt.Errorf("configmap %s/%s: %w", s.namespace, s.configMap, ErrPillarNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get configmap %s/%s: %w", s.namespace, s.configMap, err)
	}

	var raw []byte
	if data, ok := cm.Data[s.dataKey]; ok {
		raw = []byte(data)
	} else if binary, isBinary := cm.BinaryData[s.dataKey]; isBinary {
		raw = binary
	} else {
		return nil, fmt.Errorf("configmap %s/%s key %q: %w", s.namespace, s.configMap, s.dataKey, ErrPillarNotFound)
	}

	doc, err := DecodeDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("configmap %s/%s key %q: %w", s.namespace, s.configMap, s.dataKey, err)
	}

	s.logger.Debug("Pillar loaded from ConfigMap",
		domain.Field{Key: "namespace", Value: s.namespace},
		domain.Field{Key: "configmap", Value: s.configMap},
		domain.Field{Key: "resource_version", Value: cm.ResourceVersion})

	return NewMapPillar(doc), nil
}
