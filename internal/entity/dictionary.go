// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package entity extracts mentions of known datasets, methods, tasks,
// and metrics from paper titles and abstracts against four fixed
// dictionaries.
package entity

import "github.com/DashankaNadeeshanDeSilva/Paper-Graph/pkg/types"

// datasets lists commonly cited benchmark datasets across NLP, vision,
// and general ML literature.
var datasets = []string{
	"ImageNet", "CIFAR-10", "CIFAR-100", "MNIST", "COCO", "Pascal VOC",
	"SQuAD", "GLUE", "SuperGLUE", "WMT", "Penn Treebank", "WikiText",
	"CommonCrawl", "C4", "LAION", "Open Images", "ADE20K", "Cityscapes",
	"KITTI", "LibriSpeech", "AudioSet", "MS MARCO", "Natural Questions",
	"HotpotQA", "TriviaQA", "CoNLL-2003", "OntoNotes", "IMDB", "SST-2",
	"AG News", "Yelp Reviews", "Amazon Reviews", "WikiQA", "MultiNLI",
	"SNLI", "XSum", "CNN/DailyMail", "Billion Word Benchmark",
	"Atari", "MuJoCo", "OpenAI Gym", "D4RL", "Waymo Open Dataset",
	"nuScenes", "ShapeNet", "ModelNet", "Visual Genome", "Flickr30k",
	"LFW", "CelebA", "UCF101", "Kinetics", "ActivityNet",
}

// methods lists model architectures and training techniques.
var methods = []string{
	"Transformer", "BERT", "GPT", "ResNet", "VGG", "LSTM", "GRU",
	"Convolutional Neural Network", "Recurrent Neural Network",
	"Generative Adversarial Network", "Variational Autoencoder",
	"Attention Mechanism", "Self-Attention", "Reinforcement Learning",
	"Q-Learning", "Policy Gradient", "Actor-Critic", "Graph Neural Network",
	"Graph Convolutional Network", "AlexNet", "Inception", "U-Net",
	"YOLO", "Faster R-CNN", "Mask R-CNN", "DenseNet", "MobileNet",
	"EfficientNet", "Vision Transformer", "Diffusion Model",
	"Contrastive Learning", "Transfer Learning", "Fine-Tuning",
	"Knowledge Distillation", "Dropout", "Batch Normalization",
	"Layer Normalization", "Adam", "Stochastic Gradient Descent",
	"Word2Vec", "GloVe", "FastText", "Seq2Seq", "Encoder-Decoder",
	"Autoencoder", "Random Forest", "Gradient Boosting", "XGBoost",
	"Support Vector Machine", "Bayesian Optimization", "AutoML",
	"Neural Architecture Search", "Federated Learning", "Meta-Learning",
}

// tasks lists problem formulations studied in the literature.
var tasks = []string{
	"Image Classification", "Object Detection", "Semantic Segmentation",
	"Instance Segmentation", "Machine Translation", "Question Answering",
	"Named Entity Recognition", "Sentiment Analysis", "Text Summarization",
	"Language Modeling", "Speech Recognition", "Speaker Identification",
	"Image Captioning", "Visual Question Answering", "Pose Estimation",
	"Action Recognition", "Anomaly Detection", "Recommendation",
	"Dialogue Generation", "Text Classification", "Entity Linking",
	"Coreference Resolution", "Dependency Parsing", "Part-of-Speech Tagging",
	"Image Generation", "Super-Resolution", "Style Transfer",
	"Domain Adaptation", "Few-Shot Learning", "Zero-Shot Learning",
	"Continual Learning", "Multi-Task Learning",
}

// metrics lists evaluation measures reported alongside the above tasks.
var metrics = []string{
	"Accuracy", "Precision", "Recall", "F1 Score", "BLEU", "ROUGE",
	"METEOR", "Perplexity", "Mean Average Precision", "Intersection over Union",
	"AUC", "ROC", "Top-1 Accuracy", "Top-5 Accuracy", "Word Error Rate",
	"Character Error Rate", "Mean Squared Error", "Root Mean Squared Error",
	"R-squared", "Log-Likelihood", "KL Divergence", "Inception Score",
	"Frechet Inception Distance", "Normalized Discounted Cumulative Gain",
	"Exact Match",
}

type dictEntry struct {
	entityType types.EntityType
	role       types.EntityRole
	names      []string
}

var dictionaries = []dictEntry{
	{entityType: types.EntityDataset, role: types.RoleUses, names: datasets},
	{entityType: types.EntityMethod, role: types.RoleApplies, names: methods},
	{entityType: types.EntityTask, role: types.RoleEvaluates, names: tasks},
	{entityType: types.EntityMetric, role: types.RoleEvaluates, names: metrics},
}
